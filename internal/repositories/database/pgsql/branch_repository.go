package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
)

// PgxBranchRepository reads the branches table.
type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(pool *pgxpool.Pool) *PgxBranchRepository {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchReader = (*PgxBranchRepository)(nil)

func (r *PgxBranchRepository) BranchExists(ctx context.Context, branchID int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM branches WHERE branch_id = $1);`, branchID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check branch existence", err)
	}
	return exists, nil
}
