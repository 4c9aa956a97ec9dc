package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// ChangeHistoryReader defines read operations for summary change history
type ChangeHistoryReader interface {
	// ListHistoryBySummaryID returns entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListHistoryBySummaryID(ctx context.Context, summaryID int64, limit int, nextToken *string) ([]domain.ChangeHistoryEntry, *string, error)
}

// ChangeHistoryWriter defines write operations for summary change history
type ChangeHistoryWriter interface {
	// InsertHistoryEntriesInTx bulk-inserts entries. An empty slice is a no-op.
	InsertHistoryEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.ChangeHistoryEntry) error

	// PurgeHistoryBySummaryID deletes every entry of a summary and returns how many were removed.
	PurgeHistoryBySummaryID(ctx context.Context, summaryID int64) (int64, error)
}

// ChangeHistoryRepositoryFacade combines all history-related repository interfaces
type ChangeHistoryRepositoryFacade interface {
	ChangeHistoryReader
	ChangeHistoryWriter
}
