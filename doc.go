// Package ytresolve resolves YouTube channel names, handles and video ids
// into structured records using a keyless mirror of the YouTube Data API.
//
// Overview
//
// ytresolve provides high-level convenience functions for the common lookups:
//
//   - FindChannel: Resolve a channel id or legacy name into a Channel
//   - FindChannelByHandle: Resolve an @handle into a Channel
//   - FindLatestVideos: List a channel's most recent uploads
//   - FindVideo: Fetch a single video by id
//
// Each call makes one HTTP GET per stage and either returns its result or an
// error. There are no retries and no caching.
//
// Quick Start
//
//	ctx := context.Background()
//	channel, err := ytresolve.FindChannel(ctx, "UCuAXFkgsw1L7xaCfnd5JJOw")
//	if err != nil {
//		log.Fatal(err)
//	}
//	videos, err := ytresolve.FindLatestVideos(ctx, channel, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range videos {
//		fmt.Println(v.Title, v.URL())
//	}
//
// For repeated lookups create a Client once and reuse its connection pool:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := ytresolve.New(cfg, nil)
//	defer client.Close()
//
// Configuration
//
// config.Load reads settings from multiple sources:
//
//  1. Environment variables (highest priority)
//  2. Config file (ytresolve.json, ytresolve.yaml or ytresolve.yml in the
//     working directory, then ~/.config/ytresolve/)
//  3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTRESOLVE_BASE_URL: Metadata API host
//   - YTRESOLVE_TIMEOUT: Per-request timeout (e.g. 10s)
//   - YTRESOLVE_USER_AGENT: User-Agent header
//   - YTRESOLVE_MAX_IDLE_CONNS: Connection pool size
//   - YTRESOLVE_IDLE_CONN_TIMEOUT: Idle connection lifetime
//   - YTRESOLVE_LOG_LEVEL: debug, info, warn or error
//   - YTRESOLVE_LOG_FORMAT: text or json
//
// Error Handling
//
// Channel operations fail with *ChannelError and the video lookup with
// *VideoError. Both carry a fixed message and wrap the *RequestError of the
// stage that failed:
//
//	if errors.Is(err, ytresolve.ErrNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - youtube: Individual resolution stages and the Getter abstraction
//   - http: Single-attempt HTTP client
//   - config: Configuration management
package ytresolve
