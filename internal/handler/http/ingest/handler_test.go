package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tweetbrief/internal/domain/entity"
	ingHTTP "tweetbrief/internal/handler/http/ingest"
	ingUC "tweetbrief/internal/usecase/ingest"
)

/* ─── fakes ─── */

type fakeRepo struct {
	inserted bool
	err      error
}

func (f *fakeRepo) Insert(_ context.Context, s *entity.Summary) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.inserted {
		s.ID = 1
		s.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return f.inserted, nil
}

func (f *fakeRepo) Recent(_ context.Context, _ int) ([]*entity.Summary, error) {
	return nil, nil
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f fakeSummarizer) Summarize(_ context.Context, _, _, _ string) (string, error) {
	return f.summary, f.err
}

type fakeFetcher struct{ text string }

func (f fakeFetcher) FetchText(_ context.Context, _ string) string { return f.text }

type fakeNotifier struct{ delivered bool }

func (f fakeNotifier) Publish(_ context.Context, _, _, _ string) bool { return f.delivered }

func newHandler(repo *fakeRepo, sum fakeSummarizer, fetch fakeFetcher, not fakeNotifier) ingHTTP.Handler {
	return ingHTTP.Handler{Svc: ingUC.Service{
		Repo:       repo,
		Summarizer: sum,
		Fetcher:    fetch,
		Notifier:   not,
	}}
}

func doRequest(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid response JSON: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, parsed
}

/* ─── tests ─── */

func TestIngest_Success(t *testing.T) {
	h := newHandler(
		&fakeRepo{inserted: true},
		fakeSummarizer{summary: "@gopher ships a new encoder"},
		fakeFetcher{},
		fakeNotifier{delivered: true},
	)

	rec, body := doRequest(t, h, `{"text":"just shipped a new encoder","author":"@gopher","url":"https://x.com/gopher/status/1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if body["ok"] != true || body["saved"] != true || body["notified"] != true {
		t.Fatalf("body=%v", body)
	}
	summary, ok := body["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary missing: %v", body)
	}
	if summary["summary_text"] != "@gopher ships a new encoder" {
		t.Fatalf("summary=%v", summary)
	}
}

func TestIngest_MissingText(t *testing.T) {
	h := newHandler(&fakeRepo{}, fakeSummarizer{}, fakeFetcher{}, fakeNotifier{})

	rec, body := doRequest(t, h, `{"author":"@gopher"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	if body["ok"] != false {
		t.Fatalf("body=%v", body)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "required") {
		t.Fatalf("error=%v", body["error"])
	}
}

func TestIngest_InvalidJSON(t *testing.T) {
	h := newHandler(&fakeRepo{}, fakeSummarizer{}, fakeFetcher{}, fakeNotifier{})

	rec, _ := doRequest(t, h, `{"text": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestIngest_SummarizationFailureSurfacesMessage(t *testing.T) {
	h := newHandler(
		&fakeRepo{},
		fakeSummarizer{err: errors.New("backend overloaded")},
		fakeFetcher{},
		fakeNotifier{},
	)

	rec, body := doRequest(t, h, `{"text":"some tweet"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", rec.Code)
	}
	if body["ok"] != false {
		t.Fatalf("body=%v", body)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "backend overloaded") {
		t.Fatalf("upstream message not surfaced: %v", body["error"])
	}
}

func TestIngest_PersistenceFailureDegrades(t *testing.T) {
	h := newHandler(
		&fakeRepo{err: errors.New("connection refused")},
		fakeSummarizer{summary: "a summary"},
		fakeFetcher{},
		fakeNotifier{delivered: true},
	)

	rec, body := doRequest(t, h, `{"text":"some tweet"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
	if body["ok"] != true || body["saved"] != false || body["notified"] != false {
		t.Fatalf("body=%v", body)
	}
}

func TestIngest_MethodNotAllowed(t *testing.T) {
	h := newHandler(&fakeRepo{}, fakeSummarizer{}, fakeFetcher{}, fakeNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/ingest", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want 405", rec.Code)
	}
}
