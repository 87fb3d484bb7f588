package handler

import "net/http"

// PagesHandler serves the static shell pages. The real login, signup, and
// dashboard experiences belong to the frontend; these placeholders keep the
// redirect targets resolvable when taskdeck runs standalone.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler { return &PagesHandler{} }

func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", nil)
}

func (h *PagesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	render(w, "signup.html", nil)
}

func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	render(w, "dashboard.html", nil)
}
