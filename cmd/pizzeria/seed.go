package main

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample restaurants, pizzas and prices into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}

			seeded, err := database.Seed(cmd.Context(), db)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Database seeded")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already contains data, nothing to do")
			}
			return nil
		},
	}
}
