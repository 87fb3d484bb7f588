package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/db"
	"github.com/taskdeck/taskdeck/internal/handler"
	"github.com/taskdeck/taskdeck/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime)

			userStore := store.NewUserStore(database)
			taskStore := store.NewTaskStore(database)
			tokenStore := auth.NewSQLTokenStore(database)

			tokenSource := auth.NewRequestTokenSource(sessionManager)
			bearerAuth := auth.NewBearerTokenMiddleware(tokenStore, userStore)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				Policy:         cfg.Policy(),
				TokenSource:    tokenSource,
				BearerAuth:     bearerAuth,
				TaskStore:      taskStore,
				CORSOrigins:    cfg.CORSOrigins,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
