package main

import (
	"github.com/spf13/cobra"

	"github.com/rentsoft/property-api/internal/infrastructure/db/sqldb"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = sqldb.Close(db) }()

			if err := sqldb.Migrate(db); err != nil {
				return err
			}
			log.Info().Int("tables", len(sqldb.Models())).Msg("schema migrated")
			return nil
		},
	}
}
