package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"tweetbrief/internal/domain/entity"
	pg "tweetbrief/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func summaryRows(summaries ...*entity.Summary) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "summary_text", "tweet_author", "tweet_url", "created_at",
	})
	for _, s := range summaries {
		rows.AddRow(s.ID, s.SummaryText, s.TweetAuthor, s.TweetURL, s.CreatedAt)
	}
	return rows
}

/* ─────────────────────────── 1. Insert ─────────────────────────── */

func TestSummaryRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO summaries")).
		WithArgs("Go 1.24 ships with faster maps.", "@golang",
			sql.NullString{String: "https://x.com/golang/status/1", Valid: true}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	repo := pg.NewSummaryRepo(db)
	summary := &entity.Summary{
		SummaryText: "Go 1.24 ships with faster maps.",
		TweetAuthor: "@golang",
		TweetURL:    "https://x.com/golang/status/1",
	}
	inserted, err := repo.Insert(context.Background(), summary)
	if err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if !inserted {
		t.Fatal("Insert inserted=false, want true")
	}
	if summary.ID != 1 || !summary.CreatedAt.Equal(now) {
		t.Fatalf("Insert did not populate id/created_at: %+v", summary)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 2. Insert duplicate ─────────────────────────── */

func TestSummaryRepo_Insert_DuplicateURLIsNoOp(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// ON CONFLICT DO NOTHING yields no RETURNING row for duplicates.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO summaries")).
		WithArgs("dup", "",
			sql.NullString{String: "https://x.com/golang/status/1", Valid: true}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	repo := pg.NewSummaryRepo(db)
	inserted, err := repo.Insert(context.Background(), &entity.Summary{
		SummaryText: "dup",
		TweetURL:    "https://x.com/golang/status/1",
	})
	if err != nil {
		t.Fatalf("Insert err=%v, want nil for duplicate", err)
	}
	if inserted {
		t.Fatal("Insert inserted=true for duplicate URL, want false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. Insert without URL ─────────────────────────── */

func TestSummaryRepo_Insert_EmptyURLStoredAsNull(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO summaries")).
		WithArgs("no url", "@someone", sql.NullString{}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(7), time.Now()))

	repo := pg.NewSummaryRepo(db)
	inserted, err := repo.Insert(context.Background(), &entity.Summary{
		SummaryText: "no url",
		TweetAuthor: "@someone",
	})
	if err != nil || !inserted {
		t.Fatalf("Insert inserted=%v err=%v", inserted, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 4. Insert validation ─────────────────────────── */

func TestSummaryRepo_Insert_RejectsEmptySummary(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewSummaryRepo(db)
	_, err := repo.Insert(context.Background(), &entity.Summary{
		TweetURL: "https://x.com/golang/status/1",
	})
	if err == nil {
		t.Fatal("Insert accepted empty summary text")
	}
}

/* ─────────────────────────── 5. Recent ─────────────────────────── */

func TestSummaryRepo_Recent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	newer := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	want := []*entity.Summary{
		{ID: 2, SummaryText: "newer", TweetAuthor: "@a", TweetURL: "https://x.com/a/status/2", CreatedAt: newer},
		{ID: 1, SummaryText: "older", TweetAuthor: "@b", TweetURL: "https://x.com/b/status/1", CreatedAt: older},
	}

	mock.ExpectQuery("FROM summaries").
		WithArgs(50).
		WillReturnRows(summaryRows(want...))

	repo := pg.NewSummaryRepo(db)
	got, err := repo.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("Recent err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatal("Recent not sorted newest first")
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 6. Recent empty ─────────────────────────── */

func TestSummaryRepo_Recent_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM summaries").
		WithArgs(50).
		WillReturnRows(summaryRows())

	repo := pg.NewSummaryRepo(db)
	got, err := repo.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("Recent err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Recent len=%d, want 0", len(got))
	}
}
