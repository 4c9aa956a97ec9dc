package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	"github.com/retailbooks/daily_ledger_app/internal/models"
	"github.com/retailbooks/daily_ledger_app/internal/utils/mapping"
	"github.com/retailbooks/daily_ledger_app/internal/utils/pagination"
)

// PgxChangeHistoryRepository implements portsrepo.ChangeHistoryRepositoryFacade
type PgxChangeHistoryRepository struct {
	BaseRepository
}

func newPgxChangeHistoryRepository(pool *pgxpool.Pool) *PgxChangeHistoryRepository {
	return &PgxChangeHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChangeHistoryRepositoryFacade = (*PgxChangeHistoryRepository)(nil)

// InsertHistoryEntriesInTx queues one INSERT per entry in a single batch.
func (r *PgxChangeHistoryRepository) InsertHistoryEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.ChangeHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO daily_summary_history (summary_id, field_label, old_value, new_value, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelChangeHistoryEntry(entry)
		batch.Queue(query, m.SummaryID, m.FieldLabel, m.OldValue, m.NewValue, m.ChangedBy, m.ChangedAt)
	}

	var br pgx.BatchResults
	if tx != nil {
		br = tx.SendBatch(ctx, batch)
	} else {
		br = r.Pool.SendBatch(ctx, batch)
	}
	// Close surfaces the first failing statement.
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert %d change history entries", len(entries)), err)
	}
	return nil
}

// ListHistoryBySummaryID pages through entries ordered by changed_at, history_id (newest first).
func (r *PgxChangeHistoryRepository) ListHistoryBySummaryID(ctx context.Context, summaryID int64, limit int, nextToken *string) ([]domain.ChangeHistoryEntry, *string, error) {
	args := []any{summaryID}
	query := `
		SELECT history_id, summary_id, field_label, old_value, new_value, changed_by, changed_at
		FROM daily_summary_history
		WHERE summary_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastChangedAt, lastID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewFieldValidationError("nextToken", "is invalid")
		}
		args = append(args, lastChangedAt, lastID)
		query += ` AND (changed_at, history_id) < ($2, $3)`
	}
	// Fetch one extra row to learn whether another page exists.
	args = append(args, limit+1)
	query += ` ORDER BY changed_at DESC, history_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query change history for summary "+strconv.FormatInt(summaryID, 10), err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChangeHistoryEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan change history rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeCursor(last.ChangedAt, last.HistoryID)
		nextTokenVal = &token
	}

	result := make([]domain.ChangeHistoryEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainChangeHistoryEntry(m)
	}
	return result, nextTokenVal, nil
}

// PurgeHistoryBySummaryID deletes every entry of a summary.
func (r *PgxChangeHistoryRepository) PurgeHistoryBySummaryID(ctx context.Context, summaryID int64) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM daily_summary_history WHERE summary_id = $1;`, summaryID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to purge change history for summary "+strconv.FormatInt(summaryID, 10), err)
	}
	return cmdTag.RowsAffected(), nil
}
