// Package ingest provides the HTTP handler for the tweet ingestion endpoint.
package ingest

import (
	"time"

	"tweetbrief/internal/domain/entity"
)

// SummaryDTO represents the JSON structure for a stored summary.
type SummaryDTO struct {
	ID          int64     `json:"id" example:"1"`
	SummaryText string    `json:"summary_text" example:"@gopher ships a faster JSON encoder for the standard library"`
	TweetAuthor string    `json:"tweet_author,omitempty" example:"@gopher"`
	TweetURL    string    `json:"tweet_url,omitempty" example:"https://x.com/gopher/status/1"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-30T12:00:00Z"`
}

// FromEntity converts a domain summary into its JSON representation.
func FromEntity(s *entity.Summary) SummaryDTO {
	return SummaryDTO{
		ID:          s.ID,
		SummaryText: s.SummaryText,
		TweetAuthor: s.TweetAuthor,
		TweetURL:    s.TweetURL,
		CreatedAt:   s.CreatedAt,
	}
}
