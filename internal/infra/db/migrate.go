package db

import "database/sql"

// MigrateUp creates the summaries schema. Every statement is idempotent so
// the migration is safe to run on every process start.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id           SERIAL PRIMARY KEY,
    summary_text TEXT NOT NULL,
    tweet_author TEXT,
    tweet_url    TEXT UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// The feed endpoint always orders by created_at DESC.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the summaries schema. Use with caution: this deletes all
// stored summaries.
func MigrateDown(database *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_summaries_created_at`,
		`DROP TABLE IF EXISTS summaries`,
	}
	for _, stmt := range dropStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
