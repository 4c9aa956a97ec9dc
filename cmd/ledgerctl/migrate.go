package main

import (
	"fmt"

	"github.com/retailbooks/daily_ledger_app/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Example:   "  ledgerctl migrate up\n  ledgerctl migrate down --path file://migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			path = cfg.MigrationsPath
		}
		changed, err := database.RunMigrations(cfg.DatabaseURL, path, database.MigrationDirection(args[0]), logger)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "migrations %s applied\n", args[0])
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no change")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("path", "", "Migration source URL (defaults to MIGRATIONS_PATH)")
}
