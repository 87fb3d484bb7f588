package handler

import (
	"net/http"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/routes"
)

// RootHandler serves GET / and immediately forwards the visitor: to the
// dashboard when a token is present, to the login page otherwise. The guard
// deliberately passes "/" through even for authenticated visitors, so this
// handler is the only place the root decision is made.
type RootHandler struct {
	tokens auth.TokenSource
}

// NewRootHandler creates a RootHandler reading auth state from tokens.
func NewRootHandler(tokens auth.TokenSource) *RootHandler {
	return &RootHandler{tokens: tokens}
}

// Redirect answers with a 302 and a neutral "Redirecting…" body for clients
// that render before following the Location header. A token lookup failure
// reads as unauthenticated, so the worst case is a bounce to /login.
func (h *RootHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	dest := routes.Landing(auth.IsAuthenticated(h.tokens, r))
	if dest == routes.DashboardPath {
		metrics.RootRedirectsTotal.WithLabelValues("dashboard").Inc()
	} else {
		metrics.RootRedirectsTotal.WithLabelValues("login").Inc()
	}

	w.Header().Set("Location", dest)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusFound)
	render(w, "redirecting.html", nil)
}
