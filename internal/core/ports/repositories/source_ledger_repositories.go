package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// The List*ByBranchAndDateRange methods return rows whose date falls in [start, end).
// A nil tx reads through the pool; a non-nil tx reads inside that transaction.

// MovementRepository defines persistence operations for sale/expense movements.
type MovementRepository interface {
	SaveMovement(ctx context.Context, movement domain.Movement) (int64, error)
	ListMovementsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.Movement, error)
}

// CardChargeRepository defines persistence operations for card (TPV) charges.
type CardChargeRepository interface {
	SaveCardCharge(ctx context.Context, charge domain.CardCharge) (int64, error)
	ListCardChargesByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.CardCharge, error)
}

// BankDepositRepository defines persistence operations for bank deposits.
type BankDepositRepository interface {
	SaveBankDeposit(ctx context.Context, deposit domain.BankDeposit) (int64, error)
	ListBankDepositsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.BankDeposit, error)
}

// OpeningFundRepository defines persistence operations for opening cash funds.
type OpeningFundRepository interface {
	// SaveOpeningFund inserts a fund; a second fund for the same (branch, date) yields apperrors.ErrConflict.
	SaveOpeningFund(ctx context.Context, fund domain.OpeningFund) (int64, error)
	FindOpeningFund(ctx context.Context, branchID int64, date time.Time) (*domain.OpeningFund, error)
	UpdateOpeningFund(ctx context.Context, fund domain.OpeningFund) error
	DeleteOpeningFund(ctx context.Context, branchID int64, date time.Time) error
	ListOpeningFundsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.OpeningFund, error)
}

// SourceLedgerReader is the read side the aggregator depends on.
type SourceLedgerReader interface {
	ListMovementsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.Movement, error)
	ListCardChargesByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.CardCharge, error)
	ListBankDepositsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.BankDeposit, error)
	ListOpeningFundsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.OpeningFund, error)
}

// SourceLedgerRepositoryFacade combines the four source ledger repositories
type SourceLedgerRepositoryFacade interface {
	MovementRepository
	CardChargeRepository
	BankDepositRepository
	OpeningFundRepository
}
