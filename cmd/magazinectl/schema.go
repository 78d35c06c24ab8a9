package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"magazine-press/internal/infra/db"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the store schema",
}

var schemaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the authors, magazines and articles tables if they do not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.EnsureSchema(cmd.Context(), app.db, app.dialect); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaInitCmd)
}
