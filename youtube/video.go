package youtube

import "context"

// WatchURL is the prefix of every video URL.
const WatchURL = "https://www.youtube.com/watch?v="

// Video contains the metadata of a YouTube video.
type Video struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ"). Empty when the
	// playlist entry had no resource id, as happens for deleted or private videos.
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the video description.
	Description string `json:"description"`

	// PublishedAt is the ISO-8601 publication timestamp exactly as the API sent it.
	PublishedAt string `json:"published_at"`

	// Thumbnail is the URL of the high resolution thumbnail.
	Thumbnail string `json:"thumbnail"`
}

func newVideo(id, title, description, publishedAt, thumbnail string) Video {
	return Video{
		ID:          id,
		Title:       title,
		Description: description,
		PublishedAt: publishedAt,
		Thumbnail:   thumbnail,
	}
}

// URL returns the full YouTube URL for this video.
func (v Video) URL() string {
	return WatchURL + v.ID
}

// SearchVideoByID looks a single video up by id.
func SearchVideoByID(ctx context.Context, videoID string, r *Resolver) (*Video, error) {
	video, err := r.LocateVideo(ctx, videoID)
	if err != nil {
		return nil, &VideoError{Msg: MsgVideo, Err: err}
	}
	return &video, nil
}
