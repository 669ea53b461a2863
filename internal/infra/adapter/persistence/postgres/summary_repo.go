// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tweetbrief/internal/domain/entity"
	"tweetbrief/internal/repository"
)

type SummaryRepo struct {
	db *sql.DB
}

func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

// Insert persists the summary unless a record with the same tweet URL
// already exists. ON CONFLICT DO NOTHING makes the duplicate path a no-op
// rather than an error, so two concurrent inserts of the same URL race
// safely: the database constraint picks the winner.
//
// An empty TweetURL is stored as NULL. SQL NULLs never collide under a
// UNIQUE constraint, so records without a source URL are always inserted.
func (repo *SummaryRepo) Insert(ctx context.Context, summary *entity.Summary) (bool, error) {
	if err := summary.Validate(); err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}

	const query = `
INSERT INTO summaries (summary_text, tweet_author, tweet_url)
VALUES ($1, $2, $3)
ON CONFLICT (tweet_url) DO NOTHING
RETURNING id, created_at`

	var url sql.NullString
	if summary.TweetURL != "" {
		url = sql.NullString{String: summary.TweetURL, Valid: true}
	}

	err := repo.db.QueryRowContext(ctx, query,
		summary.SummaryText, summary.TweetAuthor, url,
	).Scan(&summary.ID, &summary.CreatedAt)
	if err == sql.ErrNoRows {
		// Conflict: a record with this URL already exists.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}
	return true, nil
}

// Recent returns up to limit summaries, newest first.
func (repo *SummaryRepo) Recent(ctx context.Context, limit int) ([]*entity.Summary, error) {
	const query = `
SELECT id, summary_text, tweet_author, tweet_url, created_at
FROM summaries
ORDER BY created_at DESC
LIMIT $1`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.Summary, 0, limit)
	for rows.Next() {
		var summary entity.Summary
		var author, url sql.NullString
		if err := rows.Scan(&summary.ID, &summary.SummaryText,
			&author, &url, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("Recent: Scan: %w", err)
		}
		summary.TweetAuthor = author.String
		summary.TweetURL = url.String
		summaries = append(summaries, &summary)
	}
	return summaries, rows.Err()
}
