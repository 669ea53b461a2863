package summarizer

import (
	"context"
	"strings"
)

// NoOp is a summarizer that echoes the original text without calling any
// external API. Useful for development when no API key is configured.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the original text, prefixed with the author handle when
// present and truncated to roughly the configured summary shape.
func (n *NoOp) Summarize(_ context.Context, tweetText, author, _ string) (string, error) {
	if tweetText == "" {
		return "", ErrEmptyInput
	}
	const maxLength = 180
	summary := strings.TrimSpace(tweetText)
	if author != "" {
		summary = author + ": " + summary
	}
	if len(summary) > maxLength {
		summary = summary[:maxLength] + "..."
	}
	return summary, nil
}
