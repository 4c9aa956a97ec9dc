package services

import (
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The aggregator reads the same source ledgers the source ledger service writes.
	container.Aggregator = NewAggregatorService(repos.SourceLedgerRepo, cfg.IncludeLegacyDeposits)

	container.Reconciliation = NewReconciliationService(
		repos.SummaryRepo,
		repos.HistoryRepo,
		container.Aggregator,
		WithBranchReader(repos.BranchRepo),
	)

	container.SourceLedger = NewSourceLedgerService(repos.SourceLedgerRepo, repos.BranchRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.SourceLedgerSvcFacade   = (*sourceLedgerService)(nil)
	_ portssvc.AggregatorSvc           = (*aggregatorService)(nil)
)
