// Package feed provides the HTTP handler for the public recent-summaries feed.
package feed

import (
	"errors"
	"net/http"

	ingHTTP "tweetbrief/internal/handler/http/ingest"
	"tweetbrief/internal/handler/http/respond"
	feedUC "tweetbrief/internal/usecase/feed"
)

type Handler struct{ Svc feedUC.Service }

// ServeHTTP handles GET /feed. It returns the most recent summaries, newest
// first, capped at the fixed window size. The endpoint is public.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.SafeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed: GET required"))
		return
	}

	summaries, err := h.Svc.Recent(r.Context(), feedUC.DefaultLimit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// Marshal an empty list as [] rather than null.
	items := make([]ingHTTP.SummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, ingHTTP.FromEntity(s))
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"feed": items,
	})
}
