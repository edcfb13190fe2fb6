package ytresolve

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"ytresolve/config"
	ythttp "ytresolve/http"
	"ytresolve/internal/logging"
	"ytresolve/youtube"
)

// Client resolves channels and videos over one pooled HTTP transport.
// It is safe for concurrent use; calls share no state beyond the connection pool.
type Client struct {
	http    *ythttp.Client
	baseURL string
	logger  *slog.Logger
}

// New creates a Client from cfg. A nil cfg uses config.DefaultConfig(); a nil
// logger gets one built from cfg's log level and format, writing to stderr.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	}

	transport := ythttp.DefaultTransportConfig()
	transport.MaxIdleConns = cfg.MaxIdleConns
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	transport.IdleConnTimeout = cfg.IdleConnTimeout

	return &Client{
		http: ythttp.New(&ythttp.Config{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			Transport: transport,
		}),
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// resolver returns a resolver whose log lines carry a fresh trace id, so the
// stages of one call can be grouped.
func (c *Client) resolver() *youtube.Resolver {
	return youtube.NewResolver(c.http,
		youtube.WithBaseURL(c.baseURL),
		youtube.WithLogger(c.logger.With("trace_id", uuid.NewString())),
	)
}

// FindChannel resolves a channel by its id or legacy name.
func (c *Client) FindChannel(ctx context.Context, name string) (*Channel, error) {
	return youtube.InitializeChannel(ctx, name, c.resolver())
}

// FindChannelByHandle resolves a channel by its @handle.
func (c *Client) FindChannelByHandle(ctx context.Context, handle string) (*Channel, error) {
	return youtube.InitializeChannelByHandle(ctx, handle, c.resolver())
}

// FindLatestVideos returns up to count of the channel's most recent uploads,
// newest first as the API orders them.
func (c *Client) FindLatestVideos(ctx context.Context, ch *Channel, count int) ([]Video, error) {
	return ch.LatestVideos(ctx, count, c.resolver())
}

// FindVideo looks a single video up by id.
func (c *Client) FindVideo(ctx context.Context, videoID string) (*Video, error) {
	return youtube.SearchVideoByID(ctx, videoID, c.resolver())
}

// Close releases idle connections held by the transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// FindChannel resolves a channel using a default Client.
func FindChannel(ctx context.Context, name string) (*Channel, error) {
	c := New(nil, nil)
	defer c.Close()
	return c.FindChannel(ctx, name)
}

// FindChannelByHandle resolves a channel handle using a default Client.
func FindChannelByHandle(ctx context.Context, handle string) (*Channel, error) {
	c := New(nil, nil)
	defer c.Close()
	return c.FindChannelByHandle(ctx, handle)
}

// FindLatestVideos lists a channel's latest uploads using a default Client.
func FindLatestVideos(ctx context.Context, ch *Channel, count int) ([]Video, error) {
	c := New(nil, nil)
	defer c.Close()
	return c.FindLatestVideos(ctx, ch, count)
}

// FindVideo looks a video up using a default Client.
func FindVideo(ctx context.Context, videoID string) (*Video, error) {
	c := New(nil, nil)
	defer c.Close()
	return c.FindVideo(ctx, videoID)
}
