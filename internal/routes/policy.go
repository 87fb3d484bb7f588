// Package routes holds the redirect decision policy shared by the route
// guard middleware and the root redirector. Both call sites consume the
// same table so the policy cannot drift between them.
package routes

import "strings"

// Action is the outcome of a routing decision.
type Action int

const (
	// Allow passes the request through unchanged.
	Allow Action = iota
	// RedirectLogin sends the visitor to the login page.
	RedirectLogin
	// RedirectDashboard sends the visitor to the dashboard.
	RedirectDashboard
)

// Redirect target paths.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Policy classifies request paths and decides whether a request is allowed
// through or redirected. The zero value is not useful; construct with
// Default or populate all fields.
type Policy struct {
	// Protected prefixes require a token to view.
	Protected []string
	// Public prefixes are intended for unauthenticated or pre-login use.
	// NOTE: "/" is in the default list and is a prefix of every path, so
	// IsPublic is true for nearly all paths. The decision table's explicit
	// path != "/" check is the only thing keeping authenticated visits to
	// arbitrary pages from bouncing to the dashboard. Intentional; keep.
	Public []string
	// Skip prefixes are never guarded: API routes, static assets, the
	// favicon. This mirrors the hosting-side matcher filter and is
	// configuration, not policy.
	Skip []string
}

// Default returns the stock policy: /dashboard protected; /login, /signup,
// and / public; API, static assets, favicon, health, and metrics unguarded.
func Default() Policy {
	return Policy{
		Protected: []string{"/dashboard"},
		Public:    []string{"/login", "/signup", "/"},
		Skip:      []string{"/api", "/static", "/favicon.ico", "/health", "/metrics"},
	}
}

// IsProtected reports whether path starts with any protected prefix.
func (p Policy) IsProtected(path string) bool {
	return hasAnyPrefix(path, p.Protected)
}

// IsPublic reports whether path starts with any public prefix.
func (p Policy) IsPublic(path string) bool {
	return hasAnyPrefix(path, p.Public)
}

// SkipGuard reports whether the guard should ignore path entirely.
func (p Policy) SkipGuard(path string) bool {
	return hasAnyPrefix(path, p.Skip)
}

// Decide applies the redirect decision table to a request path and token
// presence. Rows are evaluated in order; first match wins:
//
//	protected route, no token                  -> RedirectLogin
//	token present, public route, path != "/"   -> RedirectDashboard
//	otherwise                                  -> Allow
//
// Only token presence matters, never validity. The function is pure: same
// inputs, same answer, no ambient state.
func (p Policy) Decide(path string, hasToken bool) Action {
	if p.IsProtected(path) && !hasToken {
		return RedirectLogin
	}
	if hasToken && p.IsPublic(path) && path != "/" {
		return RedirectDashboard
	}
	return Allow
}

// Landing returns where a visit to the root path should land: the dashboard
// when authenticated, the login page otherwise.
func Landing(authenticated bool) string {
	if authenticated {
		return DashboardPath
	}
	return LoginPath
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, pre := range prefixes {
		if strings.HasPrefix(path, pre) {
			return true
		}
	}
	return false
}
