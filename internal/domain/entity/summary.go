// Package entity defines the core domain entities and validation logic for the application.
// It contains the Summary record produced by the ingestion pipeline, along with
// its validation rules and domain-specific errors.
package entity

import "time"

// Summary represents one persisted AI-generated summary of a social-media post.
// A Summary is created once on successful ingestion and is never updated or
// deleted by the system.
type Summary struct {
	ID          int64
	SummaryText string
	TweetAuthor string
	TweetURL    string
	CreatedAt   time.Time
}

// Validate checks the invariants a Summary must satisfy before persistence.
// SummaryText must be non-empty; TweetAuthor and TweetURL are optional.
func (s *Summary) Validate() error {
	if s.SummaryText == "" {
		return ErrEmptySummaryText
	}
	if len(s.SummaryText) > MaxSummaryTextLength {
		return ErrSummaryTextTooLong
	}
	if len(s.TweetURL) > MaxURLLength {
		return ErrURLTooLong
	}
	return nil
}
