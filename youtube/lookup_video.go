package youtube

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	ytapi "google.golang.org/api/youtube/v3"
)

// ListVideos returns up to count videos of a playlist in the order the API
// returned them. An empty playlist page is KindNotFound: callers always want
// at least one video. Items without a resource id are kept with an empty ID.
func (r *Resolver) ListVideos(ctx context.Context, playlistID string, count int) ([]Video, error) {
	if playlistID == "" {
		return nil, invalid("playlist id is empty")
	}
	if count < 1 {
		return nil, invalid(fmt.Sprintf("video count must be positive, got %d", count))
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(count))
	params.Set("playlistId", playlistID)

	resp, err := fetch[ytapi.PlaylistItemListResponse](ctx, r, dataAPIPrefix+"/playlistItems", params)
	if err != nil {
		r.logger.WarnContext(ctx, "video listing failed", "playlist", playlistID, "error", err)
		return nil, err
	}

	if len(resp.Items) == 0 {
		return nil, notFound("playlist " + playlistID + " has no videos")
	}

	videos := make([]Video, 0, len(resp.Items))
	for i, item := range resp.Items {
		if item == nil || item.Snippet == nil {
			return nil, notParsed(fmt.Sprintf("playlist item %d has no snippet", i), nil)
		}
		s := item.Snippet

		var id string
		if s.ResourceId != nil {
			id = s.ResourceId.VideoId
		}
		videos = append(videos, newVideo(id, s.Title, s.Description, s.PublishedAt, highThumbnail(s.Thumbnails)))
	}

	r.logger.DebugContext(ctx, "listed videos", "playlist", playlistID, "count", len(videos))
	return videos, nil
}

// LocateVideo fetches a single video. The returned Video carries videoID as
// given; the endpoint is only trusted to confirm existence and metadata.
func (r *Resolver) LocateVideo(ctx context.Context, videoID string) (Video, error) {
	if videoID == "" {
		return Video{}, invalid("video id is empty")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)

	resp, err := fetch[ytapi.VideoListResponse](ctx, r, dataAPIPrefix+"/videos", params)
	if err != nil {
		r.logger.WarnContext(ctx, "video lookup failed", "video", videoID, "error", err)
		return Video{}, err
	}

	if len(resp.Items) == 0 {
		return Video{}, notFound("no video with id " + videoID)
	}
	item := resp.Items[0]
	if item == nil || item.Snippet == nil {
		return Video{}, notParsed("video item has no snippet", nil)
	}
	s := item.Snippet

	return newVideo(videoID, s.Title, s.Description, s.PublishedAt, highThumbnail(s.Thumbnails)), nil
}

func highThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil || t.High == nil {
		return ""
	}
	return t.High.Url
}
