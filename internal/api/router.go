package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	BearerAuth *auth.BearerTokenMiddleware
	TaskStore  store.TaskStoreIface
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes require Bearer token authentication and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	// Bearer token authentication on everything under /api.
	r.Use(deps.BearerAuth.Authenticate)

	tasks := NewTasksHandler(deps.TaskStore)
	r.Get("/tasks", tasks.List)
	r.Post("/tasks", tasks.Create)
	r.Get("/tasks/{id}", tasks.Get)
	r.Put("/tasks/{id}", tasks.Update)
	r.Patch("/tasks/{id}/complete", tasks.Complete)
	r.Delete("/tasks/{id}", tasks.Delete)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json
// on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
