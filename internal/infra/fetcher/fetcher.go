// Package fetcher retrieves the text of a tweet from public lookup endpoints.
// It is strictly best-effort: every failure is logged and reported to the
// caller as an empty string, never as an error.
package fetcher

import (
	"context"
	"log/slog"
	"net/http"
)

// TweetFetcher resolves a tweet URL to its text via a primary oEmbed lookup
// with a syndication fallback.
type TweetFetcher struct {
	config     Config
	httpClient *http.Client
}

// New creates a TweetFetcher with the given configuration.
func New(cfg Config) *TweetFetcher {
	return &TweetFetcher{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchText returns the tweet's text, or an empty string when the URL is
// empty or neither endpoint yields text. It never fails the caller; the
// ingestion handler decides whether empty text is fatal for the request.
func (f *TweetFetcher) FetchText(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	text, err := f.fetchOEmbed(ctx, url)
	if err != nil {
		slog.Warn("oembed lookup failed, trying syndication",
			slog.String("url", url),
			slog.Any("error", err))
	} else if text != "" {
		return text
	}

	text, err = f.fetchSyndication(ctx, url)
	if err != nil {
		slog.Warn("syndication lookup failed",
			slog.String("url", url),
			slog.Any("error", err))
		return ""
	}
	return text
}
