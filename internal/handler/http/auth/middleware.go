// Package auth implements shared-secret authentication for the ingest endpoint.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"tweetbrief/internal/handler/http/respond"
)

// RequireSecret returns middleware that rejects requests whose Authorization
// header does not carry the configured bearer secret. Authentication runs
// before any request body is read, so rejected requests have no side effects.
//
// The comparison is constant time to avoid leaking the secret through timing.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	want := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid or missing credentials"))
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid or missing credentials"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authz, prefix)
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
