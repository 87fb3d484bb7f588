package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/db"
	"github.com/taskdeck/taskdeck/internal/store"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}
	cmd.AddCommand(newTokenCreateCmd())
	return cmd
}

func newTokenCreateCmd() *cobra.Command {
	var (
		name      string
		expiresIn time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Mint an API token for a user",
		Long: `Mint an API token for the user with the given email.
The plaintext token is printed once and never stored; only its hash is kept.`,
		Args: cobra.ExactArgs(1),
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

			ctx := context.Background()
			user, err := store.NewUserStore(database).GetByEmail(ctx, args[0])
			if err != nil {
				return fmt.Errorf("look up user %q: %w", args[0], err)
			}

			plaintext, hash, err := auth.GenerateToken()
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			var expiresAt *time.Time
			if expiresIn > 0 {
				t := time.Now().UTC().Add(expiresIn)
				expiresAt = &t
			}

			rec, err := auth.NewSQLTokenStore(database).Create(ctx, user.ID, name, hash, expiresAt)
			if err != nil {
				return fmt.Errorf("store token: %w", err)
			}

			fmt.Printf("token %s created for %s\n", rec.ID, user.Email)
			fmt.Printf("%s\n", plaintext)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "cli", "label for the token")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "token lifetime (0 = never expires)")
	return cmd
}
