package main

import (
	"github.com/spf13/cobra"

	"github.com/givehub/givehub/internal/store"
)

func migrateCmd(load loaderFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := load(cmd)
				if err != nil {
					return err
				}
				m, err := store.NewMigrator(cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()
				if err := m.Up(); err != nil {
					return err
				}
				logger.Info("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration (destructive)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := load(cmd)
				if err != nil {
					return err
				}
				m, err := store.NewMigrator(cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()
				if err := m.Down(); err != nil {
					return err
				}
				logger.Info("migrations rolled back")
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := load(cmd)
				if err != nil {
					return err
				}
				m, err := store.NewMigrator(cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				logger.Info("schema version", "version", version, "dirty", dirty)
				return nil
			},
		},
	)
	return cmd
}
