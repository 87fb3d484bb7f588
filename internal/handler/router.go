package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/routes"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/web"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/taskdeck/taskdeck/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Policy         routes.Policy
	TokenSource    auth.TokenSource
	BearerAuth     *auth.BearerTokenMiddleware
	TaskStore      store.TaskStoreIface
	CORSOrigins    []string
}

// NewRouter assembles the full chi router. Ordering matters: sessions load
// before the guard (the token source reads session state), and the guard
// wraps everything so its skip list — not route registration — is what
// exempts API, static, and health paths.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(deps.SessionManager.LoadAndSave)

	// Route guard — every request below passes through the redirect policy
	// unless its path is on the skip list.
	guard := auth.NewGuard(deps.Policy, deps.TokenSource)
	r.Use(guard.Handler)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	// Root redirector — the second consumer of the routing policy.
	root := NewRootHandler(deps.TokenSource)
	r.Get("/", root.Redirect)

	// Shell pages.
	pages := NewPagesHandler()
	r.Get("/login", pages.Login)
	r.Get("/signup", pages.Signup)
	r.Get("/dashboard", pages.Dashboard)

	// Health and metrics — on the guard skip list.
	r.Get("/health", Health)
	r.Get("/health/version", Version)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — guard-exempt under /api.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// JSON API at /api/v1 — bearer tokens only, never session cookies.
	apiRouter := api.NewAPIRouter(api.Deps{
		BearerAuth: deps.BearerAuth,
		TaskStore:  deps.TaskStore,
	})
	r.Mount("/api/v1", apiRouter)

	return r
}
