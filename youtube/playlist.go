package youtube

// Playlist is a channel's main upload playlist; every video the channel
// uploads lands in it.
type Playlist struct {
	ChannelID  string
	PlaylistID string
}

func newPlaylist(channelID, playlistID string) *Playlist {
	return &Playlist{ChannelID: channelID, PlaylistID: playlistID}
}
