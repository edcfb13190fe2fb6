package youtube

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ythttp "ytresolve/http"
)

func TestSearchVideoByID(t *testing.T) {
	g := newScriptedGetter(singleVideoResponse)
	r := newTestResolver(t, g)

	video, err := SearchVideoByID(context.Background(), "dQw4w9WgXcQ", r)
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", video.URL())
	assert.Equal(t, "Video Title", video.Title)
	assert.Equal(t, "Video Description", video.Description)
	assert.Equal(t, "2009-10-25T06:57:33Z", video.PublishedAt)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", video.Thumbnail)
	assert.Equal(t, []string{testBaseURL + "/noKey/videos?id=dQw4w9WgXcQ&part=snippet"}, g.urls)
}

func TestSearchVideoByIDFailures(t *testing.T) {
	tests := []struct {
		name    string
		videoID string
		body    string
		wantErr error
	}{
		{
			name:    "empty object",
			videoID: "invalid_id",
			body:    `{}`,
			wantErr: ErrNotFound,
		},
		{
			name:    "item without snippet",
			videoID: "dQw4w9WgXcQ",
			body:    `{"items": [{"id": "dQw4w9WgXcQ"}]}`,
			wantErr: ErrResponseNotParsed,
		},
		{
			name:    "garbage",
			videoID: "dQw4w9WgXcQ",
			body:    `]`,
			wantErr: ErrResponseNotParsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, newScriptedGetter(tt.body))

			video, err := SearchVideoByID(context.Background(), tt.videoID, r)
			require.Error(t, err)
			assert.Nil(t, video)
			assert.Equal(t, MsgVideo, err.Error())
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *VideoError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestSearchVideoByIDKeepsRequestedID(t *testing.T) {
	const body = `{"items": [{"id": "somethingElse", "snippet": {"title": "T"}}]}`
	r := newTestResolver(t, newScriptedGetter(body))

	video, err := SearchVideoByID(context.Background(), "requested", r)
	require.NoError(t, err)
	assert.Equal(t, "requested", video.ID)
	assert.Empty(t, video.Thumbnail)
}

func TestSearchVideoByIDServerError(t *testing.T) {
	m := &mockGetter{}
	m.On("Get", mock.Anything, testBaseURL+"/noKey/videos?id=dQw4w9WgXcQ&part=snippet").
		Return(&ythttp.Response{StatusCode: http.StatusInternalServerError}, nil).Once()

	_, err := SearchVideoByID(context.Background(), "dQw4w9WgXcQ", newTestResolver(t, m))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTP)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	m.AssertExpectations(t)
}

func TestListVideosMissingResourceID(t *testing.T) {
	const body = `{"items": [
		{"snippet": {"title": "Private video", "description": "This video is private."}},
		{"snippet": {"title": "Public", "resourceId": {"videoId": "abc"}}}
	]}`
	r := newTestResolver(t, newScriptedGetter(body))

	videos, err := r.ListVideos(context.Background(), "playlist_id1", 5)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Empty(t, videos[0].ID)
	assert.Equal(t, WatchURL, videos[0].URL())
	assert.Equal(t, "Private video", videos[0].Title)
	assert.Equal(t, "abc", videos[1].ID)
}

func TestListVideosPreservesOrder(t *testing.T) {
	const body = `{"items": [
		{"snippet": {"title": "c", "publishedAt": "2020-01-01T00:00:00Z", "resourceId": {"videoId": "c"}}},
		{"snippet": {"title": "a", "publishedAt": "2024-01-01T00:00:00Z", "resourceId": {"videoId": "a"}}},
		{"snippet": {"title": "b", "publishedAt": "2022-01-01T00:00:00Z", "resourceId": {"videoId": "b"}}}
	]}`
	r := newTestResolver(t, newScriptedGetter(body))

	videos, err := r.ListVideos(context.Background(), "playlist_id1", 3)
	require.NoError(t, err)

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestListVideosItemWithoutSnippet(t *testing.T) {
	const body = `{"items": [
		{"snippet": {"title": "ok", "resourceId": {"videoId": "ok"}}},
		{"id": "broken"}
	]}`
	r := newTestResolver(t, newScriptedGetter(body))

	videos, err := r.ListVideos(context.Background(), "playlist_id1", 2)
	require.Error(t, err)
	assert.Nil(t, videos)
	assert.ErrorIs(t, err, ErrResponseNotParsed)
}

func TestListVideosRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		playlistID string
		count      int
	}{
		{"zero count", "playlist_id1", 0},
		{"negative count", "playlist_id1", -3},
		{"empty playlist", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockGetter{}
			r := newTestResolver(t, m)

			_, err := r.ListVideos(context.Background(), tt.playlistID, tt.count)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, KindOther, reqErr.Kind)
			m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestLocateVideoEmptyIDSkipsRequest(t *testing.T) {
	m := &mockGetter{}
	_, err := newTestResolver(t, m).LocateVideo(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestVideoURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", newVideo("xyz", "", "", "", "").URL())
}
