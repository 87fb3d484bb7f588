package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
)

// TokenCookieName is the cookie checked for an opaque auth token.
const TokenCookieName = "token"

// TokenSource answers "does this request carry an auth token, and what is
// it?". Only presence is promised; callers that need validity must verify
// the token themselves.
type TokenSource interface {
	Token(r *http.Request) (string, bool)
}

// RequestTokenSource extracts a token from an incoming request. Sources are
// tried in order: server-side session, "token" cookie, Authorization Bearer
// header. Any failure along the way reads as "no token" rather than an
// error, so callers degrade to the unauthenticated path.
type RequestTokenSource struct {
	sessions *scs.SessionManager
}

// NewRequestTokenSource creates a RequestTokenSource. The session manager
// may be nil, in which case only the cookie and header are consulted.
func NewRequestTokenSource(sm *scs.SessionManager) *RequestTokenSource {
	return &RequestTokenSource{sessions: sm}
}

// Token implements TokenSource.
func (s *RequestTokenSource) Token(r *http.Request) (string, bool) {
	if s.sessions != nil {
		if tok, ok := s.sessionToken(r.Context()); ok {
			return tok, true
		}
	}

	if c, err := r.Cookie(TokenCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimPrefix(h, "Bearer "); tok != "" {
			return tok, true
		}
	}

	return "", false
}

// sessionToken reads the session without assuming LoadAndSave ran for this
// request: scs panics on an unloaded context, and a broken session layer
// must read as anonymous, not take the request down.
func (s *RequestTokenSource) sessionToken(ctx context.Context) (token string, ok bool) {
	defer func() {
		if recover() != nil {
			token, ok = "", false
		}
	}()
	if userID := s.sessions.GetString(ctx, SessionUserIDKey); userID != "" {
		return s.sessions.Token(ctx), true
	}
	return "", false
}

// IsAuthenticated reports whether the request carries any auth token.
func IsAuthenticated(src TokenSource, r *http.Request) bool {
	_, ok := src.Token(r)
	return ok
}
