package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/retailbooks/daily_ledger_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operator tooling for the daily ledger backend",
	Long: `ledgerctl runs maintenance tasks against the daily ledger database:
schema migrations, re-reconciliation of daily summaries and development tokens.

Configuration is read the same way the server reads it (.env, then environment).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "Enable debug logging")
}
