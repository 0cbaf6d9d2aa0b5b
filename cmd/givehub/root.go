// Command givehub runs the donation platform API server and its database
// maintenance commands.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/givehub/givehub/internal/config"
	"github.com/givehub/givehub/internal/logging"
)

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "givehub",
		Short:         "Donation platform API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().String("server.addr", "", "HTTP listen address")
	cmd.PersistentFlags().String("database.dsn", "", "Postgres connection string")
	cmd.PersistentFlags().Bool("database.debug", false, "log every SQL query")
	cmd.PersistentFlags().String("auth.secret", "", "token signing secret")
	cmd.PersistentFlags().Duration("auth.token_ttl", 0, "token lifetime")
	cmd.PersistentFlags().String("log.level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.format", "", "log format (text, json)")

	load := func(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
		flags := cmd.Root().PersistentFlags()
		cfg, err := config.Load(configPath, flags)
		if err != nil {
			return nil, nil, err
		}
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, nil, err
		}
		logger := logging.New(os.Stderr, level, cfg.Log.Format)
		return cfg, logger, nil
	}

	cmd.AddCommand(
		serveCmd(load),
		migrateCmd(load),
		seedCmd(load),
	)
	return cmd
}

// loaderFunc resolves config and logger for a subcommand.
type loaderFunc func(cmd *cobra.Command) (*config.Config, *slog.Logger, error)
