// Package youtube resolves channel names, handles and video ids into
// structured records by chaining calls to the YouTube metadata API.
//
// Every stage issues exactly one GET through a Getter and either returns its
// result or a *RequestError. The channel and video operations wrap those
// failures into *ChannelError and *VideoError with a fixed message.
package youtube

import (
	"context"
	"log/slog"
	"net/url"

	ythttp "ytresolve/http"
)

const (
	// DefaultBaseURL is the keyless mirror of the YouTube Data API.
	DefaultBaseURL = "https://yt.lemnoslife.com"

	// dataAPIPrefix is where the mirror serves the official Data API resources.
	dataAPIPrefix = "noKey"
)

// Getter performs a single HTTP GET. *ythttp.Client implements it; tests
// substitute scripted doubles.
type Getter interface {
	Get(ctx context.Context, url string) (*ythttp.Response, error)
}

// Resolver runs the individual resolution stages against the metadata API.
// It holds no state between calls and is safe for concurrent use as long as
// its Getter is.
type Resolver struct {
	client  Getter
	baseURL string
	logger  *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithBaseURL points the resolver at another API host.
func WithBaseURL(baseURL string) ResolverOption {
	return func(r *Resolver) {
		r.baseURL = baseURL
	}
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver issuing its requests through client.
func NewResolver(client Getter, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:  client,
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "youtube")

	return r
}

// endpoint joins path onto the base URL and attaches the encoded query.
func (r *Resolver) endpoint(path string, params url.Values) (string, error) {
	base, err := url.Parse(r.baseURL)
	if err != nil {
		return "", err
	}
	u := base.JoinPath(path)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// fetch performs one request and decodes the response into T.
func fetch[T any](ctx context.Context, r *Resolver, path string, params url.Values) (T, error) {
	var zero T

	endpoint, err := r.endpoint(path, params)
	if err != nil {
		return zero, &RequestError{Kind: KindOther, Msg: "build request url", Err: err}
	}

	r.logger.DebugContext(ctx, "requesting", "url", endpoint)
	resp, err := r.client.Get(ctx, endpoint)
	if err != nil {
		return zero, &RequestError{Kind: KindHTTP, Msg: "transport failure", Err: err}
	}

	return Decode[T](resp)
}
