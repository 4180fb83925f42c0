package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return err
		}
		fmt.Printf("%s schema up to date (%d tables)\n", color.GreenString("✓"), len(db.Tables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
