package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/core/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/retailbooks/daily_ledger_app/internal/repositories/database/pgsql"
	"github.com/retailbooks/daily_ledger_app/pkg/database"
	"github.com/spf13/cobra"
)

// systemCaller is the identity recorded in history for CLI-driven reconciliations.
var systemCaller = domain.CallerContext{UserID: "ledgerctl", Role: domain.RoleAdmin}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-run reconciliation of a daily summary",
	Long: `Re-aggregates the source ledgers of a daily summary and stores the result,
recording a history entry for every derived field that changed.

Select the summary either by ID or by branch and date.`,
	Example: `  ledgerctl reconcile --summary-id 42
  ledgerctl reconcile --branch 3 --date 2024-03-01
  ledgerctl reconcile --branch 3 --date 2024-03-01 --create`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().Int64("summary-id", 0, "ID of the summary to reconcile")
	reconcileCmd.Flags().Int64("branch", 0, "Branch of the summary (with --date)")
	reconcileCmd.Flags().String("date", "", "Date of the summary, YYYY-MM-DD (with --branch)")
	reconcileCmd.Flags().Bool("create", false, "Create the summary when none exists for --branch/--date")
	reconcileCmd.MarkFlagsMutuallyExclusive("summary-id", "branch")
	reconcileCmd.MarkFlagsRequiredTogether("branch", "date")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	summaryID, _ := cmd.Flags().GetInt64("summary-id")
	branchID, _ := cmd.Flags().GetInt64("branch")
	date, _ := cmd.Flags().GetString("date")
	create, _ := cmd.Flags().GetBool("create")

	if summaryID <= 0 && branchID <= 0 {
		return fmt.Errorf("either --summary-id or --branch and --date is required")
	}

	ctx := cmd.Context()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	svc := container.Reconciliation

	if summaryID <= 0 {
		summary, err := svc.GetDailySummaryByDate(ctx, systemCaller, &branchID, date)
		switch {
		case err == nil:
			summaryID = summary.SummaryID
		case errors.Is(err, apperrors.ErrNotFound) && create:
			return createSummary(ctx, cmd, svc, branchID, date)
		default:
			return fmt.Errorf("failed to find summary for branch %d on %s: %w", branchID, date, err)
		}
	}

	summary, changes, err := svc.UpdateDailySummary(ctx, systemCaller, summaryID, dto.UpdateDailySummaryRequest{})
	if err != nil {
		return fmt.Errorf("failed to reconcile summary %d: %w", summaryID, err)
	}

	logger.Info("Summary reconciled", slog.Int64("summary_id", summary.SummaryID), slog.Int("changes", len(changes)))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "summary %d (branch %d, %s): day balance %s\n",
		summary.SummaryID, summary.BranchID, summary.SummaryDate.Format(domain.CalendarDateLayout), summary.DayBalance.StringFixed(2))
	for _, change := range changes {
		fmt.Fprintf(out, "  %s: %s -> %s\n", change.FieldLabel, change.OldValue, change.NewValue)
	}
	if len(changes) == 0 {
		fmt.Fprintln(out, "  no changes")
	}
	return nil
}

type summaryCreator interface {
	CreateDailySummary(ctx context.Context, caller domain.CallerContext, req dto.CreateDailySummaryRequest) (*domain.DailySummary, error)
}

func createSummary(ctx context.Context, cmd *cobra.Command, svc summaryCreator, branchID int64, date string) error {
	summary, err := svc.CreateDailySummary(ctx, systemCaller, dto.CreateDailySummaryRequest{BranchID: &branchID, Date: date})
	if err != nil {
		return fmt.Errorf("failed to create summary for branch %d on %s: %w", branchID, date, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "summary %d created (branch %d, %s): day balance %s\n",
		summary.SummaryID, summary.BranchID, date, summary.DayBalance.StringFixed(2))
	return nil
}
