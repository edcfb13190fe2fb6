package youtube

import (
	"context"
	"net/url"
	"strings"

	ytapi "google.golang.org/api/youtube/v3"
)

// handleSearchResponse is a search result page whose snippets also carry the
// channel handle, which the official search snippet lacks.
type handleSearchResponse struct {
	Items []*handleSearchResult `json:"items"`
}

type handleSearchResult struct {
	Snippet *handleSnippet `json:"snippet"`
}

type handleSnippet struct {
	ChannelId     string `json:"channelId"`
	ChannelTitle  string `json:"channelTitle"`
	ChannelHandle string `json:"channelHandle"`
}

// ResolveChannelID looks a channel up by its raw id or legacy name and
// returns the canonical channel id.
//
// An empty item list is KindNotFound. An item without an id is
// KindResponseNotParsed: the API had something, but not in a usable shape.
func (r *Resolver) ResolveChannelID(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", invalid("channel name is empty")
	}

	params := url.Values{}
	params.Set("cId", name)

	resp, err := fetch[ytapi.ChannelListResponse](ctx, r, "channels", params)
	if err != nil {
		r.logger.WarnContext(ctx, "channel lookup failed", "channel", name, "error", err)
		return "", err
	}

	if len(resp.Items) == 0 {
		return "", notFound("no channel named " + name)
	}
	item := resp.Items[0]
	if item == nil || item.Id == "" {
		return "", notParsed("channel item has no id", nil)
	}

	r.logger.DebugContext(ctx, "resolved channel id", "channel", name, "channel_id", item.Id)
	return item.Id, nil
}

// ResolveChannelByHandle searches for channels matching handle and returns
// the id and display title of the first candidate whose handle is exactly
// "@"+handle. Matching is case-sensitive. A leading "@" on the input is
// optional.
func (r *Resolver) ResolveChannelByHandle(ctx context.Context, handle string) (id, title string, err error) {
	handle = strings.TrimPrefix(handle, "@")
	if handle == "" {
		return "", "", invalid("channel handle is empty")
	}
	want := "@" + handle

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "channel")
	params.Set("q", want)

	resp, err := fetch[handleSearchResponse](ctx, r, dataAPIPrefix+"/search", params)
	if err != nil {
		r.logger.WarnContext(ctx, "handle search failed", "handle", want, "error", err)
		return "", "", err
	}

	for _, item := range resp.Items {
		if item == nil || item.Snippet == nil || item.Snippet.ChannelHandle != want {
			continue
		}
		if item.Snippet.ChannelId == "" {
			return "", "", notParsed("matching search result has no channel id", nil)
		}
		r.logger.DebugContext(ctx, "resolved channel handle", "handle", want, "channel_id", item.Snippet.ChannelId)
		return item.Snippet.ChannelId, item.Snippet.ChannelTitle, nil
	}

	return "", "", notFound("no channel with handle " + want)
}

// ResolveMainPlaylistID returns the id of the playlist holding every upload
// of the channel.
func (r *Resolver) ResolveMainPlaylistID(ctx context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", invalid("channel id is empty")
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	resp, err := fetch[ytapi.ChannelListResponse](ctx, r, dataAPIPrefix+"/channels", params)
	if err != nil {
		r.logger.WarnContext(ctx, "playlist lookup failed", "channel_id", channelID, "error", err)
		return "", err
	}

	if len(resp.Items) == 0 {
		return "", notFound("no channel with id " + channelID)
	}
	item := resp.Items[0]
	if item == nil || item.ContentDetails == nil || item.ContentDetails.RelatedPlaylists == nil {
		return "", notParsed("channel item has no related playlists", nil)
	}
	uploads := item.ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", notParsed("channel item has no uploads playlist", nil)
	}

	r.logger.DebugContext(ctx, "resolved uploads playlist", "channel_id", channelID, "playlist", uploads)
	return uploads, nil
}
