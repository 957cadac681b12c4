package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/workforce-management-api/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed loads demo organisations into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := database.Migrate(a.db, a.logger); err != nil {
			return err
		}

		_, err = database.Seed(cmd.Context(), a.db, a.logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
