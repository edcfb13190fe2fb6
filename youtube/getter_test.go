package youtube

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	ythttp "ytresolve/http"
)

// scriptedGetter answers each Get with the most recently registered
// response, so a test lists the bodies of a pipeline last stage first.
type scriptedGetter struct {
	mu        sync.Mutex
	responses []*ythttp.Response
	urls      []string
}

func newScriptedGetter(bodies ...string) *scriptedGetter {
	g := &scriptedGetter{}
	for _, body := range bodies {
		g.responses = append(g.responses, &ythttp.Response{StatusCode: http.StatusOK, Body: []byte(body)})
	}
	return g
}

func (g *scriptedGetter) Get(_ context.Context, url string) (*ythttp.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.urls = append(g.urls, url)
	if len(g.responses) == 0 {
		return &ythttp.Response{StatusCode: http.StatusOK}, nil
	}
	resp := g.responses[len(g.responses)-1]
	g.responses = g.responses[:len(g.responses)-1]
	return resp, nil
}

func (g *scriptedGetter) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.urls)
}

type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) Get(ctx context.Context, url string) (*ythttp.Response, error) {
	args := m.Called(ctx, url)
	resp, _ := args.Get(0).(*ythttp.Response)
	return resp, args.Error(1)
}

const testBaseURL = "https://api.test"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(t *testing.T, g Getter) *Resolver {
	t.Helper()
	return NewResolver(g, WithBaseURL(testBaseURL), WithLogger(quietLogger()))
}

func okResponse(body string) *ythttp.Response {
	return &ythttp.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

const (
	channelResponse = `{"items": [
		{
			"id": "id_channel1"
		}
	]}`

	playlistResponse = `{"items": [
		{
			"contentDetails": {
				"relatedPlaylists": {
					"uploads": "playlist_id1"
				}
			}
		}
	]}`

	videosResponse = `{
		"items": [
			{
				"snippet": {
					"publishedAt": "2023-09-21T17:02:18Z",
					"title": "Video Title 1",
					"description": "Description video 1",
					"thumbnails": {
						"high": {
							"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
						}
					},
					"resourceId": {
						"videoId": "dQw4w9WgXcQ"
					}
				}
			},
			{
				"snippet": {
					"publishedAt": "2023-09-18T18:20:58Z",
					"title": "Video Title 2",
					"description": "Description video 2",
					"thumbnails": {
						"high": {
							"url": "https://i.ytimg.com/vi/oHg5SJYRHA0/hqdefault.jpg"
						}
					},
					"resourceId": {
						"videoId": "oHg5SJYRHA0"
					}
				}
			}
		]
	}`

	singleVideoResponse = `{
		"items": [
			{
				"snippet": {
					"publishedAt": "2009-10-25T06:57:33Z",
					"channelId": "UCuAXFkgsw1L7xaCfnd5JJOw",
					"title": "Video Title",
					"description": "Video Description",
					"thumbnails": {
						"high": {
							"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
						}
					}
				}
			}
		]
	}`
)
