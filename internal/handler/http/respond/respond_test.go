package respond_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"tweetbrief/internal/handler/http/respond"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.JSON(rec, 200, map[string]any{"ok": true})

	if rec.Code != 200 {
		t.Fatalf("code=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("body=%v", body)
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.Error(rec, 500, errors.New("upstream exploded"))

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["ok"] != false {
		t.Fatalf("body=%v", body)
	}
	if body["error"] != "upstream exploded" {
		t.Fatalf("error=%v", body["error"])
	}
}

func TestSafeError_PassesValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.SafeError(rec, 400, errors.New("tweet text is required"))

	if !strings.Contains(rec.Body.String(), "tweet text is required") {
		t.Fatalf("validation message hidden: %s", rec.Body.String())
	}
}

func TestSafeError_Hides5xxDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.SafeError(rec, 500, errors.New("pq: password authentication failed"))

	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("missing generic message: %s", rec.Body.String())
	}
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.SafeError(rec, 500, nil)

	if rec.Body.Len() != 0 {
		t.Fatalf("wrote body for nil error: %s", rec.Body.String())
	}
}
