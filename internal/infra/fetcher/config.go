package fetcher

import (
	"time"

	"tweetbrief/pkg/config"
)

// Default endpoints for tweet text lookup. Both are unauthenticated public
// endpoints; the syndication endpoint is the fallback when oEmbed yields
// nothing usable.
const (
	defaultOEmbedURL      = "https://publish.twitter.com/oembed"
	defaultSyndicationURL = "https://cdn.syndication.twimg.com/tweet-result"
)

// Config holds configuration for the tweet text fetcher.
// Endpoints are overridable for tests and for API-compatible mirrors.
type Config struct {
	// OEmbedURL is the base URL of the primary oEmbed lookup.
	OEmbedURL string

	// SyndicationURL is the base URL of the secondary syndication lookup.
	SyndicationURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// LoadConfig loads fetcher configuration from environment variables.
//
// Environment variables:
//   - FETCHER_OEMBED_URL: primary endpoint base URL
//   - FETCHER_SYNDICATION_URL: secondary endpoint base URL
//   - FETCHER_TIMEOUT: per-request timeout (default: 10s)
func LoadConfig() Config {
	return Config{
		OEmbedURL:      config.GetEnvString("FETCHER_OEMBED_URL", defaultOEmbedURL),
		SyndicationURL: config.GetEnvString("FETCHER_SYNDICATION_URL", defaultSyndicationURL),
		Timeout:        config.GetEnvDuration("FETCHER_TIMEOUT", 10*time.Second),
	}
}
