package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/workforce-management-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate creates or updates the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		return database.Migrate(a.db, a.logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
