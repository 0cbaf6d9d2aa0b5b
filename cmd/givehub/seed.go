package main

import (
	"github.com/spf13/cobra"

	"github.com/givehub/givehub/internal/model"
	"github.com/givehub/givehub/internal/store"
)

// defaultCategories is the starting category set. Categories can be added or
// removed in the database afterwards; re-running seed skips existing rows.
var defaultCategories = []string{"food", "medication", "clothes", "other"}

func seedCmd(load loaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default item categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.Database.DSN, store.Options{Debug: cfg.Database.Debug})
			if err != nil {
				return err
			}
			defer db.Close()

			repo := store.NewRepository(db)
			ctx := cmd.Context()

			for _, name := range defaultCategories {
				category := &model.ItemCategory{Name: name}
				if err := repo.CreateItemCategory(ctx, category); err != nil {
					if store.DuplicateColumn(err) != "" {
						logger.Info("category already present", "name", name)
						continue
					}
					return err
				}
				logger.Info("category created", "name", name, "id", category.ID)
			}
			return nil
		},
	}
}
