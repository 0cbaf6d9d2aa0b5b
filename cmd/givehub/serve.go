package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/config"
	"github.com/givehub/givehub/internal/httpapi"
	"github.com/givehub/givehub/internal/store"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(load loaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}
			if cfg.Auth.Secret == config.DevSecret {
				logger.Warn("auth.secret is the insecure development default; set a real secret")
			}

			db, err := store.Open(cfg.Database.DSN, store.Options{Debug: cfg.Database.Debug})
			if err != nil {
				return err
			}
			defer db.Close()

			repo := store.NewRepository(db)
			hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
			tokens := auth.NewTokenService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
			service := auth.NewService(repo, hasher, tokens, logger)
			server := httpapi.New(service, repo, repo, tokens, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Listen(cfg.Server.Addr)
			}()
			logger.Info("listening", "addr", cfg.Server.Addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
