package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type aggregatorService struct {
	BaseService
	ledgers               portsrepo.SourceLedgerReader
	includeLegacyDeposits bool
}

// NewAggregatorService creates the aggregator. includeLegacyDeposits adds CASH_FUND
// movements recorded before bank deposits had their own ledger to the deposits total.
func NewAggregatorService(ledgers portsrepo.SourceLedgerReader, includeLegacyDeposits bool) portssvc.AggregatorSvc {
	return &aggregatorService{
		ledgers:               ledgers,
		includeLegacyDeposits: includeLegacyDeposits,
	}
}

var _ portssvc.AggregatorSvc = (*aggregatorService)(nil)

func (s *aggregatorService) Aggregate(ctx context.Context, tx pgx.Tx, branchID int64, date time.Time) (domain.Aggregates, error) {
	start, end := domain.DayWindow(date)
	agg := domain.Aggregates{
		BranchID:    branchID,
		Date:        start,
		Expenses:    decimal.Zero,
		Deposits:    decimal.Zero,
		CardPayment: decimal.Zero,
		OpeningFund: decimal.Zero,
	}

	movements, err := s.ledgers.ListMovementsByBranchAndDateRange(ctx, tx, branchID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.Int64("branch_id", branchID))
		return domain.Aggregates{}, fmt.Errorf("failed to list movements: %w", err)
	}
	for _, m := range movements {
		switch m.Kind {
		case domain.MovementExpense:
			agg.Expenses = agg.Expenses.Add(m.Amount)
			agg.Counts.Expenses++
		case domain.MovementCashFund:
			if s.includeLegacyDeposits {
				agg.Deposits = agg.Deposits.Add(m.Amount)
				agg.Counts.LegacyDeposits++
			}
		}
	}

	deposits, err := s.ledgers.ListBankDepositsByBranchAndDateRange(ctx, tx, branchID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank deposits", slog.Int64("branch_id", branchID))
		return domain.Aggregates{}, fmt.Errorf("failed to list bank deposits: %w", err)
	}
	for _, d := range deposits {
		agg.Deposits = agg.Deposits.Add(d.Amount)
	}
	agg.Counts.BankDeposits = len(deposits)

	charges, err := s.ledgers.ListCardChargesByBranchAndDateRange(ctx, tx, branchID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list card charges", slog.Int64("branch_id", branchID))
		return domain.Aggregates{}, fmt.Errorf("failed to list card charges: %w", err)
	}
	for _, c := range charges {
		if c.Status != domain.CardChargeSuccessful {
			continue
		}
		agg.CardPayment = agg.CardPayment.Add(c.Amount)
		agg.Counts.CardCharges++
	}

	funds, err := s.ledgers.ListOpeningFundsByBranchAndDateRange(ctx, tx, branchID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list opening funds", slog.Int64("branch_id", branchID))
		return domain.Aggregates{}, fmt.Errorf("failed to list opening funds: %w", err)
	}
	// (branch, date) is unique, so at most one row is expected.
	if len(funds) > 0 {
		agg.OpeningFund = funds[0].Amount
	}
	agg.Counts.OpeningFunds = len(funds)

	s.LogDebug(ctx, "Aggregated source ledgers",
		slog.Int64("branch_id", branchID),
		slog.String("date", start.Format(domain.CalendarDateLayout)),
		slog.String("expenses", agg.Expenses.String()),
		slog.String("deposits", agg.Deposits.String()),
		slog.String("card_payment", agg.CardPayment.String()),
		slog.String("opening_fund", agg.OpeningFund.String()))
	return agg, nil
}
