package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// SummaryFilter narrows a summary listing.
type SummaryFilter struct {
	BranchID *int64
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// DailySummaryReader defines read operations for daily summaries
type DailySummaryReader interface {
	// FindSummaryByID retrieves a summary by its ID. Returns apperrors.ErrNotFound when absent.
	FindSummaryByID(ctx context.Context, summaryID int64) (*domain.DailySummary, error)

	// FindSummaryByBranchAndDate retrieves the summary of a branch for a calendar day.
	FindSummaryByBranchAndDate(ctx context.Context, branchID int64, date time.Time) (*domain.DailySummary, error)

	// ListSummaries retrieves summaries ordered by date, newest first.
	ListSummaries(ctx context.Context, filter SummaryFilter) ([]domain.DailySummary, error)
}

// DailySummaryWriter defines write operations for daily summaries
type DailySummaryWriter interface {
	// SaveSummaryInTx inserts a summary and returns its generated ID.
	// A duplicate (branch, date) yields apperrors.ErrConflict.
	SaveSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) (int64, error)

	// UpdateSummaryInTx overwrites every mutable column of an existing summary.
	UpdateSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) error

	// DeleteSummary removes a summary. Its change history is left in place.
	DeleteSummary(ctx context.Context, summaryID int64) error
}

// DailySummaryTransactionSupport defines operations that need an open transaction
type DailySummaryTransactionSupport interface {
	// FindSummaryByIDForUpdate selects a summary and locks its row until tx ends.
	FindSummaryByIDForUpdate(ctx context.Context, tx pgx.Tx, summaryID int64) (*domain.DailySummary, error)
}

// DailySummaryRepositoryFacade combines all summary-related repository interfaces
type DailySummaryRepositoryFacade interface {
	DailySummaryReader
	DailySummaryWriter
	DailySummaryTransactionSupport
}

// DailySummaryRepositoryWithTx extends DailySummaryRepositoryFacade with transaction capabilities
type DailySummaryRepositoryWithTx interface {
	DailySummaryRepositoryFacade
	TransactionManager
}
