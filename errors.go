package ytresolve

import "ytresolve/youtube"

// Types re-exported from the youtube package so callers of the top-level
// functions need only one import.
type (
	Channel          = youtube.Channel
	Video            = youtube.Video
	ChannelError     = youtube.ChannelError
	VideoError       = youtube.VideoError
	RequestError     = youtube.RequestError
	RequestErrorKind = youtube.RequestErrorKind
)

// Request error kinds.
const (
	KindNotFound          = youtube.KindNotFound
	KindOther             = youtube.KindOther
	KindResponseNotParsed = youtube.KindResponseNotParsed
	KindHTTP              = youtube.KindHTTP
)

// Sentinel errors. Every error returned by this package matches exactly one
// of them through errors.Is:
//
//	if errors.Is(err, ytresolve.ErrNotFound) {
//		fmt.Println("no such channel")
//	}
//
// The fixed message and the failed stage are reachable with errors.As:
//
//	var reqErr *ytresolve.RequestError
//	if errors.As(err, &reqErr) && reqErr.Kind == ytresolve.KindHTTP {
//		fmt.Printf("upstream answered %d\n", reqErr.StatusCode)
//	}
var (
	ErrNotFound          = youtube.ErrNotFound
	ErrResponseNotParsed = youtube.ErrResponseNotParsed
	ErrHTTP              = youtube.ErrHTTP
	ErrInvalidRequest    = youtube.ErrInvalidRequest
)
