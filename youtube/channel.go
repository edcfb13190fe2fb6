package youtube

import "context"

// Channel is a resolved YouTube channel. It is only produced by a successful
// lookup, so ChannelID is never empty.
type Channel struct {
	// Name is the name or handle the channel was looked up with.
	Name string `json:"name"`
	// ChannelID is the canonical channel id (e.g. "UCuAXFkgsw1L7xaCfnd5JJOw").
	ChannelID string `json:"channel_id"`
	// Title is the display title. Only the handle lookup fills it.
	Title string `json:"title,omitempty"`
}

func newChannel(name, channelID, title string) *Channel {
	return &Channel{Name: name, ChannelID: channelID, Title: title}
}

// URL returns the full YouTube URL of the channel.
func (c *Channel) URL() string {
	return "https://www.youtube.com/channel/" + c.ChannelID
}

// InitializeChannel resolves name into a Channel.
func InitializeChannel(ctx context.Context, name string, r *Resolver) (*Channel, error) {
	channelID, err := r.ResolveChannelID(ctx, name)
	if err != nil {
		return nil, &ChannelError{Msg: MsgChannelID, Err: err}
	}
	return newChannel(name, channelID, ""), nil
}

// InitializeChannelByHandle resolves an @handle into a Channel, filling its
// display title.
func InitializeChannelByHandle(ctx context.Context, handle string, r *Resolver) (*Channel, error) {
	channelID, title, err := r.ResolveChannelByHandle(ctx, handle)
	if err != nil {
		return nil, &ChannelError{Msg: MsgChannelID, Err: err}
	}
	return newChannel(handle, channelID, title), nil
}

// MainPlaylist resolves the channel's uploads playlist.
func (c *Channel) MainPlaylist(ctx context.Context, r *Resolver) (*Playlist, error) {
	playlistID, err := r.ResolveMainPlaylistID(ctx, c.ChannelID)
	if err != nil {
		return nil, &ChannelError{Msg: MsgPlaylistID, Err: err}
	}
	return newPlaylist(c.ChannelID, playlistID), nil
}

// LatestVideos returns up to count of the channel's most recent uploads.
// The playlist lookup and the listing run in sequence; the first failure
// ends the call and no partial result is returned.
func (c *Channel) LatestVideos(ctx context.Context, count int, r *Resolver) ([]Video, error) {
	if c == nil {
		return nil, &ChannelError{Msg: MsgChannelVideos, Err: invalid("channel is nil")}
	}

	playlist, err := c.MainPlaylist(ctx, r)
	if err != nil {
		return nil, err
	}

	videos, err := r.ListVideos(ctx, playlist.PlaylistID, count)
	if err != nil {
		return nil, &ChannelError{Msg: MsgChannelVideos, Err: err}
	}
	return videos, nil
}
