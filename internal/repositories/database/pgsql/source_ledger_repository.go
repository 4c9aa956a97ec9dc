package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	"github.com/retailbooks/daily_ledger_app/internal/models"
	"github.com/retailbooks/daily_ledger_app/internal/utils/mapping"
)

// PgxSourceLedgerRepository implements the movements, card_charges, bank_deposits
// and opening_funds tables.
type PgxSourceLedgerRepository struct {
	BaseRepository
}

func newPgxSourceLedgerRepository(pool *pgxpool.Pool) *PgxSourceLedgerRepository {
	return &PgxSourceLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.SourceLedgerRepositoryFacade = (*PgxSourceLedgerRepository)(nil)
	_ portsrepo.SourceLedgerReader           = (*PgxSourceLedgerRepository)(nil)
)

func insertError(table string, branchID int64, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("branch %d: %w", branchID, apperrors.ErrNotFound)
	}
	return writeError("failed to insert into "+table, err)
}

// listInWindow runs a range query and maps each row with conv.
func listInWindow[M any, D any](ctx context.Context, db querier, table, query string, conv func(M) D, args ...any) ([]D, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan "+table, err)
	}
	result := make([]D, len(items))
	for i, item := range items {
		result[i] = conv(item)
	}
	return result, nil
}

// SaveMovement inserts a movement and returns its ID.
func (r *PgxSourceLedgerRepository) SaveMovement(ctx context.Context, movement domain.Movement) (int64, error) {
	m := mapping.ToModelMovement(movement)
	query := `
		INSERT INTO movements (branch_id, movement_date, kind, amount, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING movement_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.BranchID, m.MovementDate, m.Kind, m.Amount, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, insertError("movements", m.BranchID, err)
	}
	return id, nil
}

func (r *PgxSourceLedgerRepository) ListMovementsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.Movement, error) {
	query := `
		SELECT movement_id, branch_id, movement_date, kind, amount, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM movements
		WHERE branch_id = $1 AND movement_date >= $2 AND movement_date < $3
		ORDER BY movement_date, movement_id;
	`
	return listInWindow(ctx, r.db(tx), "movements", query, mapping.ToDomainMovement, branchID, start, end)
}

// SaveCardCharge inserts a card charge and returns its ID.
func (r *PgxSourceLedgerRepository) SaveCardCharge(ctx context.Context, charge domain.CardCharge) (int64, error) {
	m := mapping.ToModelCardCharge(charge)
	query := `
		INSERT INTO card_charges (branch_id, charge_date, amount, status, reference, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING card_charge_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.BranchID, m.ChargeDate, m.Amount, m.Status, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, insertError("card_charges", m.BranchID, err)
	}
	return id, nil
}

func (r *PgxSourceLedgerRepository) ListCardChargesByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.CardCharge, error) {
	query := `
		SELECT card_charge_id, branch_id, charge_date, amount, status, reference,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM card_charges
		WHERE branch_id = $1 AND charge_date >= $2 AND charge_date < $3
		ORDER BY charge_date, card_charge_id;
	`
	return listInWindow(ctx, r.db(tx), "card_charges", query, mapping.ToDomainCardCharge, branchID, start, end)
}

// SaveBankDeposit inserts a bank deposit and returns its ID.
func (r *PgxSourceLedgerRepository) SaveBankDeposit(ctx context.Context, deposit domain.BankDeposit) (int64, error) {
	m := mapping.ToModelBankDeposit(deposit)
	query := `
		INSERT INTO bank_deposits (branch_id, deposit_date, amount, reference, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING bank_deposit_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.BranchID, m.DepositDate, m.Amount, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, insertError("bank_deposits", m.BranchID, err)
	}
	return id, nil
}

func (r *PgxSourceLedgerRepository) ListBankDepositsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.BankDeposit, error) {
	query := `
		SELECT bank_deposit_id, branch_id, deposit_date, amount, reference,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_deposits
		WHERE branch_id = $1 AND deposit_date >= $2 AND deposit_date < $3
		ORDER BY deposit_date, bank_deposit_id;
	`
	return listInWindow(ctx, r.db(tx), "bank_deposits", query, mapping.ToDomainBankDeposit, branchID, start, end)
}

// SaveOpeningFund inserts the opening fund of a (branch, date).
func (r *PgxSourceLedgerRepository) SaveOpeningFund(ctx context.Context, fund domain.OpeningFund) (int64, error) {
	m := mapping.ToModelOpeningFund(fund)
	query := `
		INSERT INTO opening_funds (branch_id, fund_date, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING opening_fund_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.BranchID, m.FundDate, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewConflictError(fmt.Sprintf("opening fund for branch %d on %s", m.BranchID, m.FundDate.Format(domain.CalendarDateLayout)))
		}
		return 0, insertError("opening_funds", m.BranchID, err)
	}
	return id, nil
}

const openingFundColumns = `opening_fund_id, branch_id, fund_date, amount, created_at, created_by, last_updated_at, last_updated_by`

// FindOpeningFund returns the opening fund of a branch for a day.
func (r *PgxSourceLedgerRepository) FindOpeningFund(ctx context.Context, branchID int64, date time.Time) (*domain.OpeningFund, error) {
	query := `SELECT ` + openingFundColumns + ` FROM opening_funds WHERE branch_id = $1 AND fund_date = $2;`
	rows, err := r.Pool.Query(ctx, query, branchID, domain.NormalizeDate(date))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query opening fund", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.OpeningFund])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan opening fund", err)
	}
	fund := mapping.ToDomainOpeningFund(m)
	return &fund, nil
}

// UpdateOpeningFund changes the amount of an existing opening fund.
func (r *PgxSourceLedgerRepository) UpdateOpeningFund(ctx context.Context, fund domain.OpeningFund) error {
	m := mapping.ToModelOpeningFund(fund)
	query := `
		UPDATE opening_funds
		SET amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE branch_id = $1 AND fund_date = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.BranchID, m.FundDate, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return writeError("failed to update opening fund", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOpeningFund removes the opening fund of a branch for a day.
func (r *PgxSourceLedgerRepository) DeleteOpeningFund(ctx context.Context, branchID int64, date time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM opening_funds WHERE branch_id = $1 AND fund_date = $2;`, branchID, domain.NormalizeDate(date))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete opening fund", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSourceLedgerRepository) ListOpeningFundsByBranchAndDateRange(ctx context.Context, tx pgx.Tx, branchID int64, start, end time.Time) ([]domain.OpeningFund, error) {
	query := `
		SELECT ` + openingFundColumns + `
		FROM opening_funds
		WHERE branch_id = $1 AND fund_date >= $2 AND fund_date < $3
		ORDER BY fund_date, opening_fund_id;
	`
	return listInWindow(ctx, r.db(tx), "opening_funds", query, mapping.ToDomainOpeningFund, branchID, start, end)
}
