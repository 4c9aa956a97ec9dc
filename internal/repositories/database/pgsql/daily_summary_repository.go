package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	"github.com/retailbooks/daily_ledger_app/internal/models"
	"github.com/retailbooks/daily_ledger_app/internal/utils/mapping"
)

const summaryColumns = `summary_id, branch_id, summary_date, gross_sales, cash, credit, credit_payments,
	topups, wire_transfers, notes, expenses, deposits, card_payment, opening_fund, day_balance,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxDailySummaryRepository implements portsrepo.DailySummaryRepositoryWithTx
type PgxDailySummaryRepository struct {
	BaseRepository
}

func newPgxDailySummaryRepository(pool *pgxpool.Pool) *PgxDailySummaryRepository {
	return &PgxDailySummaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DailySummaryRepositoryWithTx = (*PgxDailySummaryRepository)(nil)

func (r *PgxDailySummaryRepository) findOne(ctx context.Context, db querier, where string, args ...any) (*domain.DailySummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM daily_summaries ` + where
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query daily summary", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DailySummary])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan daily summary", err)
	}
	summary := mapping.ToDomainDailySummary(row)
	return &summary, nil
}

// FindSummaryByID retrieves a summary by its ID.
func (r *PgxDailySummaryRepository) FindSummaryByID(ctx context.Context, summaryID int64) (*domain.DailySummary, error) {
	return r.findOne(ctx, r.Pool, `WHERE summary_id = $1;`, summaryID)
}

// FindSummaryByIDForUpdate selects a summary and holds its row lock until tx ends.
func (r *PgxDailySummaryRepository) FindSummaryByIDForUpdate(ctx context.Context, tx pgx.Tx, summaryID int64) (*domain.DailySummary, error) {
	return r.findOne(ctx, r.db(tx), `WHERE summary_id = $1 FOR UPDATE;`, summaryID)
}

// FindSummaryByBranchAndDate retrieves the summary of a branch for a calendar day.
func (r *PgxDailySummaryRepository) FindSummaryByBranchAndDate(ctx context.Context, branchID int64, date time.Time) (*domain.DailySummary, error) {
	return r.findOne(ctx, r.Pool, `WHERE branch_id = $1 AND summary_date = $2;`, branchID, domain.NormalizeDate(date))
}

// ListSummaries retrieves summaries newest date first.
func (r *PgxDailySummaryRepository) ListSummaries(ctx context.Context, filter portsrepo.SummaryFilter) ([]domain.DailySummary, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conditions = append(conditions, "branch_id = $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, domain.NormalizeDate(*filter.From))
		conditions = append(conditions, "summary_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, domain.NormalizeDate(*filter.To))
		conditions = append(conditions, "summary_date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + summaryColumns + ` FROM daily_summaries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY summary_date DESC, summary_id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list daily summaries", err)
	}
	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailySummary])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan daily summaries", err)
	}
	return mapping.ToDomainDailySummarySlice(summaries), nil
}

// SaveSummaryInTx inserts a summary and returns its generated ID.
func (r *PgxDailySummaryRepository) SaveSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) (int64, error) {
	m := mapping.ToModelDailySummary(summary)
	query := `
		INSERT INTO daily_summaries (
			branch_id, summary_date, gross_sales, cash, credit, credit_payments, topups,
			wire_transfers, notes, expenses, deposits, card_payment, opening_fund, day_balance,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING summary_id;
	`
	var summaryID int64
	err := r.db(tx).QueryRow(ctx, query,
		m.BranchID, m.SummaryDate, m.GrossSales, m.Cash, m.Credit, m.CreditPayments, m.Topups,
		m.WireTransfers, m.Notes, m.Expenses, m.Deposits, m.CardPayment, m.OpeningFund, m.DayBalance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&summaryID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return 0, apperrors.NewConflictError(fmt.Sprintf("daily summary for branch %d on %s", m.BranchID, m.SummaryDate.Format(domain.CalendarDateLayout)))
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("branch %d: %w", m.BranchID, apperrors.ErrNotFound)
		}
		return 0, writeError("failed to insert daily summary", err)
	}
	return summaryID, nil
}

// UpdateSummaryInTx overwrites the mutable columns of a summary. Branch and date never change.
func (r *PgxDailySummaryRepository) UpdateSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) error {
	m := mapping.ToModelDailySummary(summary)
	query := `
		UPDATE daily_summaries
		SET gross_sales = $2, cash = $3, credit = $4, credit_payments = $5, topups = $6,
		    wire_transfers = $7, notes = $8, expenses = $9, deposits = $10, card_payment = $11,
		    opening_fund = $12, day_balance = $13, last_updated_at = $14, last_updated_by = $15
		WHERE summary_id = $1;
	`
	cmdTag, err := r.db(tx).Exec(ctx, query,
		m.SummaryID, m.GrossSales, m.Cash, m.Credit, m.CreditPayments, m.Topups,
		m.WireTransfers, m.Notes, m.Expenses, m.Deposits, m.CardPayment,
		m.OpeningFund, m.DayBalance, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError("failed to update daily summary "+strconv.FormatInt(m.SummaryID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSummary removes a summary. daily_summary_history has no foreign key to it.
func (r *PgxDailySummaryRepository) DeleteSummary(ctx context.Context, summaryID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM daily_summaries WHERE summary_id = $1;`, summaryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete daily summary "+strconv.FormatInt(summaryID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
