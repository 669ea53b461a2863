// Package feed implements the read side: the most recent summaries,
// newest first.
package feed

import (
	"context"
	"fmt"

	"tweetbrief/internal/domain/entity"
	"tweetbrief/internal/repository"
)

// DefaultLimit is the fixed size of the recent-summaries window. There is no
// pagination beyond this cap.
const DefaultLimit = 50

type Service struct {
	Repo repository.SummaryRepository
}

// Recent returns up to limit summaries ordered newest first. Non-positive or
// oversized limits are clamped to DefaultLimit.
func (s Service) Recent(ctx context.Context, limit int) ([]*entity.Summary, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	summaries, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return summaries, nil
}
