package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/store"
)

// BearerTokenMiddleware authenticates API requests via Bearer token.
// Session cookies are deliberately not accepted on API routes.
type BearerTokenMiddleware struct {
	tokens TokenStore
	users  *store.UserStore
}

// NewBearerTokenMiddleware creates a new BearerTokenMiddleware.
func NewBearerTokenMiddleware(ts TokenStore, us *store.UserStore) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{tokens: ts, users: us}
}

// Authenticate extracts and validates a Bearer token. On success the token
// owner's *store.User is placed on the request context and an async
// last_used_at update fires. Missing, unknown, revoked, or expired tokens
// get a 401 with {"error": "unauthorized"}.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		plaintext := strings.TrimPrefix(authHeader, "Bearer ")
		if plaintext == "" {
			writeUnauthorized(w)
			return
		}

		hash := HashToken(plaintext)
		rec, err := m.tokens.GetByHash(r.Context(), hash)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		if rec.RevokedAt.Valid {
			writeUnauthorized(w)
			return
		}

		if rec.ExpiresAt.Valid && rec.ExpiresAt.Time.Before(time.Now()) {
			writeUnauthorized(w)
			return
		}

		user, err := m.users.GetByID(r.Context(), rec.UserID)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		// Async to avoid a write on every authenticated read.
		go m.tokens.UpdateLastUsed(context.Background(), rec.ID)

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
