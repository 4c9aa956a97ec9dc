package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
)

// AggregatorSvc computes the derived totals of a branch and calendar day from the source ledgers.
type AggregatorSvc interface {
	// Aggregate reads the four source ledgers. A non-nil tx makes the reads part of that transaction.
	Aggregate(ctx context.Context, tx pgx.Tx, branchID int64, date time.Time) (domain.Aggregates, error)
}

// DailySummaryReaderSvc defines read operations for daily summaries
type DailySummaryReaderSvc interface {
	// GetDailySummary retrieves a summary by ID, scoped to the caller's branch.
	GetDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) (*domain.DailySummary, error)

	// GetDailySummaryByDate retrieves the summary of a branch for a YYYY-MM-DD date.
	GetDailySummaryByDate(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.DailySummary, error)

	// ListDailySummaries retrieves summaries, newest date first.
	ListDailySummaries(ctx context.Context, caller domain.CallerContext, params dto.ListDailySummariesParams) ([]domain.DailySummary, error)

	// PreviewAggregates runs the aggregator without persisting anything.
	PreviewAggregates(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.Aggregates, error)
}

// DailySummaryWriterSvc defines the reconciliation operations
type DailySummaryWriterSvc interface {
	// CreateDailySummary reconciles and inserts the summary of a branch and day.
	// Fails with apperrors.ErrConflict if one already exists.
	CreateDailySummary(ctx context.Context, caller domain.CallerContext, req dto.CreateDailySummaryRequest) (*domain.DailySummary, error)

	// UpdateDailySummary merges the supplied fields, recomputes derived fields and records
	// one history entry per changed field. It returns the summary and the new entries.
	UpdateDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64, req dto.UpdateDailySummaryRequest) (*domain.DailySummary, []domain.ChangeHistoryEntry, error)

	// DeleteDailySummary removes a summary (administrators only). History is retained.
	DeleteDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) error
}

// ChangeHistorySvc defines operations on the summary audit trail
type ChangeHistorySvc interface {
	// ListSummaryHistory lists change entries of a summary, newest first.
	ListSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error)

	// PurgeSummaryHistory explicitly deletes the history of a summary (administrators only).
	PurgeSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64) (int64, error)
}

// ReconciliationSvcFacade combines all reconciliation-related service interfaces
type ReconciliationSvcFacade interface {
	DailySummaryReaderSvc
	DailySummaryWriterSvc
	ChangeHistorySvc
}
