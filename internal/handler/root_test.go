package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token(r *http.Request) (string, bool) {
	return s.token, s.token != ""
}

func TestRootRedirect_Authenticated(t *testing.T) {
	h := NewRootHandler(staticTokens{token: "abc"})

	w := httptest.NewRecorder()
	h.Redirect(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestRootRedirect_Unauthenticated(t *testing.T) {
	h := NewRootHandler(staticTokens{})

	w := httptest.NewRecorder()
	h.Redirect(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRootRedirect_PlaceholderBody(t *testing.T) {
	h := NewRootHandler(staticTokens{})

	w := httptest.NewRecorder()
	h.Redirect(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(w.Body.String(), "Redirecting") {
		t.Error("response body missing the redirecting placeholder")
	}
}
