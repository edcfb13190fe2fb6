package youtube

import (
	"errors"
	"fmt"
	"strings"

	ythttp "ytresolve/http"
)

// Sentinel errors matched by RequestError through errors.Is.
var (
	ErrNotFound          = errors.New("youtube: resource not found")
	ErrResponseNotParsed = errors.New("youtube: response not parsed")
	ErrHTTP              = errors.New("youtube: http failure")
	ErrInvalidRequest    = errors.New("youtube: invalid request")
)

// Messages carried by the domain errors, one per call site.
const (
	MsgChannelID     = "Failed to get channel id"
	MsgPlaylistID    = "Failed to get playlist id"
	MsgChannelVideos = "Failed to get videos from channel"
	MsgVideo         = "Failed to get video"
)

// RequestErrorKind classifies a failed metadata API request.
type RequestErrorKind int

const (
	// KindNotFound means the API answered but had nothing for the query.
	KindNotFound RequestErrorKind = iota
	// KindOther covers failures before any request was sent.
	KindOther
	// KindResponseNotParsed means the body was malformed or an item had an unusable shape.
	KindResponseNotParsed
	// KindHTTP means the transport failed or the API answered with a non-2xx status.
	KindHTTP
)

// String returns the string representation of a request error kind.
func (k RequestErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindOther:
		return "other"
	case KindResponseNotParsed:
		return "response not parsed"
	case KindHTTP:
		return "http"
	default:
		return "unknown"
	}
}

func (k RequestErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindResponseNotParsed:
		return ErrResponseNotParsed
	case KindHTTP:
		return ErrHTTP
	default:
		return ErrInvalidRequest
	}
}

// RequestError describes a single failed resolution stage.
// Use errors.Is with the sentinels to branch on the kind, or errors.As to
// reach the status code and the underlying cause:
//
//	var reqErr *youtube.RequestError
//	if errors.As(err, &reqErr) && reqErr.Kind == youtube.KindHTTP {
//		fmt.Printf("status %d\n", reqErr.StatusCode)
//	}
type RequestError struct {
	// Kind classifies the failure.
	Kind RequestErrorKind
	// StatusCode is the HTTP status for KindHTTP errors. Zero when no response arrived.
	StatusCode int
	// Msg adds detail about what was being checked when the failure happened.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

// Error returns a string representation of the request error.
func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())

	if e.Kind == KindHTTP && e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
		switch {
		case ythttp.IsClientError(e.StatusCode):
			b.WriteString(" (client error)")
		case ythttp.IsServerError(e.StatusCode):
			b.WriteString(" (server error)")
		}
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *RequestError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel matching this error's kind.
func (e *RequestError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func notFound(msg string) *RequestError {
	return &RequestError{Kind: KindNotFound, Msg: msg}
}

func notParsed(msg string, err error) *RequestError {
	return &RequestError{Kind: KindResponseNotParsed, Msg: msg, Err: err}
}

func invalid(msg string) *RequestError {
	return &RequestError{Kind: KindOther, Msg: msg}
}

// ChannelError is returned by the channel operations. Its message is fixed per
// call site; the failed stage is available through Unwrap.
type ChannelError struct {
	Msg string
	Err error
}

func (e *ChannelError) Error() string { return e.Msg }

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *ChannelError) Unwrap() error { return e.Err }

// VideoError is returned by the single video lookup.
type VideoError struct {
	Msg string
	Err error
}

func (e *VideoError) Error() string { return e.Msg }

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *VideoError) Unwrap() error { return e.Err }
