// Package ingest implements the ingestion pipeline: resolve the tweet text,
// summarize it, persist the summary idempotently, and fire a best-effort
// push notification.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tweetbrief/internal/domain/entity"
	"tweetbrief/internal/repository"
)

// Summarizer produces a short summary of a tweet.
type Summarizer interface {
	Summarize(ctx context.Context, text, author, url string) (string, error)
}

// TextFetcher resolves a tweet URL to its text, best-effort.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) string
}

// Notifier publishes a best-effort push notification.
type Notifier interface {
	Publish(ctx context.Context, title, body, url string) bool
}

// Service orchestrates one ingestion request. The pipeline steps run
// strictly in sequence; there is no cross-request coordination beyond the
// database's uniqueness constraint.
type Service struct {
	Repo       repository.SummaryRepository
	Summarizer Summarizer
	Fetcher    TextFetcher
	Notifier   Notifier
}

// Input is one ingestion submission. Text may be empty when URL is set; the
// fetcher then recovers the text. Author and URL are optional context.
type Input struct {
	Text   string
	Author string
	URL    string
}

// Result reports the outcome of one ingestion.
type Result struct {
	// Summary is the derived record. ID and CreatedAt are populated only
	// when Saved is true.
	Summary *entity.Summary

	// Saved reports whether a new row was persisted. False means either the
	// URL was already stored (idempotent no-op) or persistence failed; both
	// degrade rather than failing the request.
	Saved bool

	// Notified reports whether the push notification was handed to the
	// notification backend. Always false when Saved is false.
	Notified bool
}

// Ingest runs the pipeline for one submission.
//
// Failure policy: missing text and summarization exhaustion are fatal;
// persistence failures degrade to Saved=false; notification failures degrade
// to Notified=false. Failures in the best-effort tail never mask a
// successful summarization.
func (s Service) Ingest(ctx context.Context, in Input) (*Result, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && in.URL != "" {
		text = s.Fetcher.FetchText(ctx, in.URL)
	}
	if text == "" {
		return nil, ErrMissingText
	}

	summaryText, err := s.Summarizer.Summarize(ctx, text, in.Author, in.URL)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	record := &entity.Summary{
		SummaryText: summaryText,
		TweetAuthor: in.Author,
		TweetURL:    in.URL,
	}

	result := &Result{Summary: record}

	inserted, err := s.Repo.Insert(ctx, record)
	if err != nil {
		slog.Warn("summary persistence failed, continuing without saved record",
			slog.String("url", in.URL),
			slog.Any("error", err))
		return result, nil
	}
	if !inserted {
		slog.Info("summary already stored for url, skipping duplicate",
			slog.String("url", in.URL))
		return result, nil
	}
	result.Saved = true

	// Notify only after a fresh insert so duplicate submissions never
	// produce duplicate pushes.
	result.Notified = s.Notifier.Publish(ctx, notificationTitle(in.Author), summaryText, in.URL)

	return result, nil
}

// notificationTitle builds the human-readable push title.
func notificationTitle(author string) string {
	if author == "" {
		return "New tweet summary"
	}
	return fmt.Sprintf("New summary from %s", author)
}
