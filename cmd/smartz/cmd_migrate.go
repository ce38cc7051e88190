package main

import (
	"errors"

	"github.com/spf13/cobra"

	"smartz/internal/config"
	"smartz/internal/infrastructure/database"
	"smartz/internal/infrastructure/logging"
)

func initMigrateCmd() {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesDatabase() {
				return errors.New("migrate: DATABASE_URL is not set")
			}
			return database.RunMigrations(cfg.DatabaseURL, logging.New(cmd.ErrOrStderr(), cfg.LogLevel))
		},
	}

	rootCmd.AddCommand(migrateCmd)
}
