// Package repository defines the persistence interfaces used by the use case layer.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"tweetbrief/internal/domain/entity"
)

// SummaryRepository provides access to persisted summaries.
//
// The store enforces a uniqueness invariant on the tweet URL: no two records
// may share the same non-null URL. Insert is the only write operation;
// records are never updated or deleted.
type SummaryRepository interface {
	// Insert attempts to persist the summary. If a record with the same
	// tweet URL already exists, the insert is silently skipped and Insert
	// returns (false, nil). A true result means a new row was created.
	//
	// Repeated ingestion of the same URL therefore has no duplicating side
	// effect, including under concurrent requests: the database constraint
	// decides the winner and the loser observes inserted=false.
	Insert(ctx context.Context, summary *entity.Summary) (inserted bool, err error)

	// Recent returns up to limit summaries ordered by creation time,
	// newest first.
	Recent(ctx context.Context, limit int) ([]*entity.Summary, error)
}
