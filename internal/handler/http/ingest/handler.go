package ingest

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweetbrief/internal/handler/http/respond"
	ingUC "tweetbrief/internal/usecase/ingest"
)

type Handler struct{ Svc ingUC.Service }

// ServeHTTP handles POST /ingest. It accepts a tweet payload, summarizes it,
// persists the summary, and triggers a broadcast notification. The response
// reports whether a fresh row was stored and whether the notification was
// delivered.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.SafeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed: POST required"))
		return
	}

	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
		URL    string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	result, err := h.Svc.Ingest(r.Context(), ingUC.Input{
		Text:   req.Text,
		Author: req.Author,
		URL:    req.URL,
	})
	if err != nil {
		if errors.Is(err, ingUC.ErrMissingText) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		// Summarization exhaustion is the only fatal pipeline error here, and
		// its upstream message is the caller's one clue to what failed.
		// Persistence and notification problems never surface as errors.
		respond.Error(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"summary":  FromEntity(result.Summary),
		"saved":    result.Saved,
		"notified": result.Notified,
	})
}
