package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock DailySummaryRepository ---
type MockDailySummaryRepository struct {
	mock.Mock
}

var _ portsrepo.DailySummaryRepositoryWithTx = (*MockDailySummaryRepository)(nil)

func (m *MockDailySummaryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDailySummaryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) FindSummaryByID(ctx context.Context, summaryID int64) (*domain.DailySummary, error) {
	args := m.Called(ctx, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) FindSummaryByBranchAndDate(ctx context.Context, branchID int64, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, branchID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) ListSummaries(ctx context.Context, filter portsrepo.SummaryFilter) ([]domain.DailySummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) SaveSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) (int64, error) {
	args := m.Called(ctx, tx, summary)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDailySummaryRepository) UpdateSummaryInTx(ctx context.Context, tx pgx.Tx, summary domain.DailySummary) error {
	args := m.Called(ctx, tx, summary)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) DeleteSummary(ctx context.Context, summaryID int64) error {
	args := m.Called(ctx, summaryID)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) FindSummaryByIDForUpdate(ctx context.Context, tx pgx.Tx, summaryID int64) (*domain.DailySummary, error) {
	args := m.Called(ctx, tx, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

// --- Mock ChangeHistoryRepository ---
type MockChangeHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.ChangeHistoryRepositoryFacade = (*MockChangeHistoryRepository)(nil)

func (m *MockChangeHistoryRepository) ListHistoryBySummaryID(ctx context.Context, summaryID int64, limit int, nextToken *string) ([]domain.ChangeHistoryEntry, *string, error) {
	args := m.Called(ctx, summaryID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.ChangeHistoryEntry), returnedNextToken, args.Error(2)
}

func (m *MockChangeHistoryRepository) InsertHistoryEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.ChangeHistoryEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockChangeHistoryRepository) PurgeHistoryBySummaryID(ctx context.Context, summaryID int64) (int64, error) {
	args := m.Called(ctx, summaryID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Aggregator ---
type MockAggregator struct {
	mock.Mock
}

var _ portssvc.AggregatorSvc = (*MockAggregator)(nil)

func (m *MockAggregator) Aggregate(ctx context.Context, tx pgx.Tx, branchID int64, date time.Time) (domain.Aggregates, error) {
	args := m.Called(ctx, tx, branchID, date)
	return args.Get(0).(domain.Aggregates), args.Error(1)
}

// --- Mock BranchReader ---
type MockBranchReader struct {
	mock.Mock
}

var _ portsrepo.BranchReader = (*MockBranchReader)(nil)

func (m *MockBranchReader) BranchExists(ctx context.Context, branchID int64) (bool, error) {
	args := m.Called(ctx, branchID)
	return args.Bool(0), args.Error(1)
}
