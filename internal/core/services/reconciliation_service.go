package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
)

const (
	defaultSummaryListLimit = 31
	defaultHistoryPageLimit = 20
)

// reconciliationService implements the ReconciliationSvcFacade interface
type reconciliationService struct {
	BaseService
	summaryRepo portsrepo.DailySummaryRepositoryWithTx
	historyRepo portsrepo.ChangeHistoryRepositoryFacade
	aggregator  portssvc.AggregatorSvc
	now         func() time.Time
}

// ReconciliationOption is a functional option for configuring the reconciliation service
type ReconciliationOption func(*reconciliationService)

// WithBranchReader enables branch existence checks.
func WithBranchReader(reader portsrepo.BranchReader) ReconciliationOption {
	return func(s *reconciliationService) {
		s.BranchReader = reader
	}
}

// WithClock overrides the time source used for audit fields and history entries.
func WithClock(now func() time.Time) ReconciliationOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates a new reconciliation service with the provided options
func NewReconciliationService(
	summaryRepo portsrepo.DailySummaryRepositoryWithTx,
	historyRepo portsrepo.ChangeHistoryRepositoryFacade,
	aggregator portssvc.AggregatorSvc,
	options ...ReconciliationOption,
) portssvc.ReconciliationSvcFacade {
	svc := &reconciliationService{
		summaryRepo: summaryRepo,
		historyRepo: historyRepo,
		aggregator:  aggregator,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// rollback is deferred after every Begin; once the tx is committed it is a no-op.
func (s *reconciliationService) rollback(ctx context.Context, tx pgx.Tx) {
	if err := s.summaryRepo.Rollback(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to roll back transaction")
	}
}

func (s *reconciliationService) CreateDailySummary(ctx context.Context, caller domain.CallerContext, req dto.CreateDailySummaryRequest) (*domain.DailySummary, error) {
	date, err := parseDateField("date", req.Date)
	if err != nil {
		return nil, err
	}
	branchID, err := s.ResolveBranch(ctx, caller, req.BranchID)
	if err != nil {
		return nil, err
	}

	existing, err := s.summaryRepo.FindSummaryByBranchAndDate(ctx, branchID, date)
	switch {
	case err == nil && existing != nil:
		s.LogDebug(ctx, "Daily summary already exists",
			slog.Int64("branch_id", branchID),
			slog.Int64("summary_id", existing.SummaryID))
		return nil, fmt.Errorf("daily summary for branch %d on %s: %w", branchID, req.Date, apperrors.ErrConflict)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check for an existing daily summary", slog.Int64("branch_id", branchID))
		return nil, err
	}

	tx, err := s.summaryRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, err
	}
	defer s.rollback(ctx, tx)

	agg, err := s.aggregator.Aggregate(ctx, tx, branchID, date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := domain.DailySummary{
		BranchID:    branchID,
		SummaryDate: date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}
	summary.Merge(req.ToSummaryFields())
	summary.ApplyAggregates(agg)
	if err := checkAmountRange(summary); err != nil {
		return nil, err
	}

	summaryID, err := s.summaryRepo.SaveSummaryInTx(ctx, tx, summary)
	if err != nil {
		s.LogError(ctx, err, "Failed to save daily summary",
			slog.Int64("branch_id", branchID),
			slog.String("date", req.Date))
		return nil, err
	}
	summary.SummaryID = summaryID

	if err := s.summaryRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit daily summary", slog.Int64("summary_id", summaryID))
		return nil, err
	}

	s.LogInfo(ctx, "Daily summary created",
		slog.Int64("summary_id", summaryID),
		slog.Int64("branch_id", branchID),
		slog.String("date", req.Date),
		slog.String("day_balance", summary.DayBalance.String()))
	return &summary, nil
}

func (s *reconciliationService) UpdateDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64, req dto.UpdateDailySummaryRequest) (*domain.DailySummary, []domain.ChangeHistoryEntry, error) {
	if err := s.RequireCaller(caller); err != nil {
		return nil, nil, err
	}

	tx, err := s.summaryRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, nil, err
	}
	defer s.rollback(ctx, tx)

	before, err := s.summaryRepo.FindSummaryByIDForUpdate(ctx, tx, summaryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load daily summary", slog.Int64("summary_id", summaryID))
		}
		return nil, nil, err
	}
	if err := s.AuthorizeBranch(ctx, caller, before.BranchID); err != nil {
		return nil, nil, err
	}

	agg, err := s.aggregator.Aggregate(ctx, tx, before.BranchID, before.SummaryDate)
	if err != nil {
		return nil, nil, err
	}

	after := *before
	after.Merge(req.ToSummaryFields())
	after.ApplyAggregates(agg)
	if err := checkAmountRange(after); err != nil {
		return nil, nil, err
	}
	changes := domain.DiffSummaries(*before, after)

	now := s.now()
	after.LastUpdatedAt = now
	after.LastUpdatedBy = caller.UserID

	if err := s.summaryRepo.UpdateSummaryInTx(ctx, tx, after); err != nil {
		s.LogError(ctx, err, "Failed to update daily summary", slog.Int64("summary_id", summaryID))
		return nil, nil, err
	}

	entries := domain.ToHistoryEntries(summaryID, changes, caller.UserID, now)
	if len(entries) > 0 {
		if err := s.historyRepo.InsertHistoryEntriesInTx(ctx, tx, entries); err != nil {
			s.LogError(ctx, err, "Failed to record change history",
				slog.Int64("summary_id", summaryID),
				slog.Int("entries", len(entries)))
			return nil, nil, err
		}
	}

	if err := s.summaryRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit daily summary update", slog.Int64("summary_id", summaryID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Daily summary reconciled",
		slog.Int64("summary_id", summaryID),
		slog.Int("changed_fields", len(entries)),
		slog.String("day_balance", after.DayBalance.String()))
	return &after, entries, nil
}

func (s *reconciliationService) DeleteDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) error {
	if err := s.RequireAdmin(ctx, caller, "deleting a daily summary"); err != nil {
		return err
	}
	if err := s.summaryRepo.DeleteSummary(ctx, summaryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete daily summary", slog.Int64("summary_id", summaryID))
		}
		return err
	}
	s.LogInfo(ctx, "Daily summary deleted, change history retained",
		slog.Int64("summary_id", summaryID),
		slog.String("user_id", caller.UserID))
	return nil
}

func (s *reconciliationService) PurgeSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64) (int64, error) {
	if err := s.RequireAdmin(ctx, caller, "purging change history"); err != nil {
		return 0, err
	}
	purged, err := s.historyRepo.PurgeHistoryBySummaryID(ctx, summaryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to purge change history", slog.Int64("summary_id", summaryID))
		return 0, err
	}
	s.LogInfo(ctx, "Change history purged",
		slog.Int64("summary_id", summaryID),
		slog.Int64("purged", purged),
		slog.String("user_id", caller.UserID))
	return purged, nil
}

func (s *reconciliationService) GetDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) (*domain.DailySummary, error) {
	if err := s.RequireCaller(caller); err != nil {
		return nil, err
	}
	summary, err := s.summaryRepo.FindSummaryByID(ctx, summaryID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeBranch(ctx, caller, summary.BranchID); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *reconciliationService) GetDailySummaryByDate(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.DailySummary, error) {
	day, err := parseDateField("date", date)
	if err != nil {
		return nil, err
	}
	resolved, err := s.ResolveBranch(ctx, caller, branchID)
	if err != nil {
		return nil, err
	}
	return s.summaryRepo.FindSummaryByBranchAndDate(ctx, resolved, day)
}

func (s *reconciliationService) ListDailySummaries(ctx context.Context, caller domain.CallerContext, params dto.ListDailySummariesParams) ([]domain.DailySummary, error) {
	if err := s.RequireCaller(caller); err != nil {
		return nil, err
	}
	filter := portsrepo.SummaryFilter{
		BranchID: params.BranchID,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if !caller.IsAdmin() {
		branchID := caller.BranchID
		if params.BranchID != nil {
			if err := s.AuthorizeBranch(ctx, caller, *params.BranchID); err != nil {
				return nil, err
			}
		}
		filter.BranchID = &branchID
	}
	if params.From != "" {
		from, err := parseDateField("from", params.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := parseDateField("to", params.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, apperrors.NewFieldValidationError("to", "must not be before from")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSummaryListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	summaries, err := s.summaryRepo.ListSummaries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily summaries")
		return nil, err
	}
	return summaries, nil
}

func (s *reconciliationService) ListSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error) {
	if err := s.RequireCaller(caller); err != nil {
		return nil, err
	}
	summary, err := s.summaryRepo.FindSummaryByID(ctx, summaryID)
	switch {
	case err == nil:
		if err := s.AuthorizeBranch(ctx, caller, summary.BranchID); err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound) && caller.IsAdmin():
		// The summary was deleted; its retained history stays readable by administrators.
	default:
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryPageLimit
	}
	entries, nextToken, err := s.historyRepo.ListHistoryBySummaryID(ctx, summaryID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list change history", slog.Int64("summary_id", summaryID))
		return nil, err
	}
	return &dto.ListHistoryResponse{
		Entries:   dto.ToChangeHistoryEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *reconciliationService) PreviewAggregates(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.Aggregates, error) {
	day, err := parseDateField("date", date)
	if err != nil {
		return nil, err
	}
	resolved, err := s.ResolveBranch(ctx, caller, branchID)
	if err != nil {
		return nil, err
	}
	agg, err := s.aggregator.Aggregate(ctx, nil, resolved, day)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
