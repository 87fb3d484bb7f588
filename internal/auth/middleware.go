package auth

import (
	"context"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/routes"
	"github.com/taskdeck/taskdeck/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// Guard is the route guard middleware: it runs on every guarded request and
// either passes the request through or answers with a redirect, per the
// shared routing policy. It never errors; a failed token lookup is treated
// as an unauthenticated request.
type Guard struct {
	policy routes.Policy
	tokens TokenSource
}

// NewGuard creates a Guard from a policy and a token source.
func NewGuard(policy routes.Policy, tokens TokenSource) *Guard {
	return &Guard{policy: policy, tokens: tokens}
}

// Handler applies the guard decision to each request. Paths matched by the
// policy's skip list (API, static assets, favicon) bypass the guard
// entirely; that filter is configuration pushed in from the caller, not
// something the guard computes.
func (g *Guard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if g.policy.SkipGuard(path) {
			next.ServeHTTP(w, r)
			return
		}

		_, hasToken := g.tokens.Token(r)
		switch g.policy.Decide(path, hasToken) {
		case routes.RedirectLogin:
			metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
			http.Redirect(w, r, routes.LoginPath, http.StatusFound)
		case routes.RedirectDashboard:
			metrics.GuardDecisionsTotal.WithLabelValues("redirect_dashboard").Inc()
			http.Redirect(w, r, routes.DashboardPath, http.StatusFound)
		default:
			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			next.ServeHTTP(w, r)
		}
	})
}

// UserFromContext retrieves the authenticated user from the context, or nil.
// Set by the API bearer token middleware.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// withUser returns a child context carrying the authenticated user.
func withUser(ctx context.Context, u *store.User) context.Context {
	return context.WithValue(ctx, UserContextKey, u)
}
