package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SummaryRepo:      newPgxDailySummaryRepository(dbPool),
		HistoryRepo:      newPgxChangeHistoryRepository(dbPool),
		SourceLedgerRepo: newPgxSourceLedgerRepository(dbPool),
		BranchRepo:       newPgxBranchRepository(dbPool),
	}
}
