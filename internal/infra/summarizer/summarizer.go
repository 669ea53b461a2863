// Package summarizer provides AI-powered tweet summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with bounded
// fixed-delay retry, plus observability through structured logging and
// Prometheus metrics.
package summarizer

import (
	"context"
	"errors"
)

// Summarizer produces a short summary of a tweet. The author handle and
// source URL are advisory context embedded in the prompt, not required fields.
type Summarizer interface {
	// Summarize generates a short summary of text. It blocks through the
	// configured retry schedule and fails only after every attempt has been
	// exhausted, returning an error that wraps the last underlying failure.
	//
	// Client disconnects do not abort in-flight attempts: the retry loop
	// runs on a context detached from the inbound request.
	Summarize(ctx context.Context, text, author, url string) (string, error)
}

// ErrEmptyInput indicates Summarize was called with no text.
var ErrEmptyInput = errors.New("summarizer: input text is required")

// errEmptySummary marks an attempt whose extracted summary was empty after
// trimming. The backend technically succeeded, but an empty summary is
// useless to the feed, so the attempt is retried like any other failure.
var errEmptySummary = errors.New("summarizer: backend returned empty summary")
