package main

import (
	"writings-api/config"
	"writings-api/repositories"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		return config.WithDB(cfg, func(db *gorm.DB) error {
			if err := repositories.Migrate(db); err != nil {
				return err
			}

			log.Info().Msg("Migration complete")
			return nil
		})
	},
}
