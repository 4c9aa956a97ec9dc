package handlers_test

import (
	"context"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) GetDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) (*domain.DailySummary, error) {
	args := m.Called(ctx, caller, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockReconciliationService) GetDailySummaryByDate(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.DailySummary, error) {
	args := m.Called(ctx, caller, branchID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockReconciliationService) ListDailySummaries(ctx context.Context, caller domain.CallerContext, params dto.ListDailySummariesParams) ([]domain.DailySummary, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}

func (m *MockReconciliationService) PreviewAggregates(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (*domain.Aggregates, error) {
	args := m.Called(ctx, caller, branchID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aggregates), args.Error(1)
}

func (m *MockReconciliationService) CreateDailySummary(ctx context.Context, caller domain.CallerContext, req dto.CreateDailySummaryRequest) (*domain.DailySummary, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockReconciliationService) UpdateDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64, req dto.UpdateDailySummaryRequest) (*domain.DailySummary, []domain.ChangeHistoryEntry, error) {
	args := m.Called(ctx, caller, summaryID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var changes []domain.ChangeHistoryEntry
	if args.Get(1) != nil {
		changes = args.Get(1).([]domain.ChangeHistoryEntry)
	}
	return args.Get(0).(*domain.DailySummary), changes, args.Error(2)
}

func (m *MockReconciliationService) DeleteDailySummary(ctx context.Context, caller domain.CallerContext, summaryID int64) error {
	args := m.Called(ctx, caller, summaryID)
	return args.Error(0)
}

func (m *MockReconciliationService) ListSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error) {
	args := m.Called(ctx, caller, summaryID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListHistoryResponse), args.Error(1)
}

func (m *MockReconciliationService) PurgeSummaryHistory(ctx context.Context, caller domain.CallerContext, summaryID int64) (int64, error) {
	args := m.Called(ctx, caller, summaryID)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Mock SourceLedgerService ---
type MockSourceLedgerService struct {
	mock.Mock
}

func (m *MockSourceLedgerService) RecordMovement(ctx context.Context, caller domain.CallerContext, req dto.CreateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockSourceLedgerService) ListMovements(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.Movement, error) {
	args := m.Called(ctx, caller, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockSourceLedgerService) RecordCardCharge(ctx context.Context, caller domain.CallerContext, req dto.CreateCardChargeRequest) (*domain.CardCharge, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardCharge), args.Error(1)
}

func (m *MockSourceLedgerService) ListCardCharges(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.CardCharge, error) {
	args := m.Called(ctx, caller, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardCharge), args.Error(1)
}

func (m *MockSourceLedgerService) RecordBankDeposit(ctx context.Context, caller domain.CallerContext, req dto.CreateBankDepositRequest) (*domain.BankDeposit, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankDeposit), args.Error(1)
}

func (m *MockSourceLedgerService) ListBankDeposits(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.BankDeposit, error) {
	args := m.Called(ctx, caller, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankDeposit), args.Error(1)
}

func (m *MockSourceLedgerService) SetOpeningFund(ctx context.Context, caller domain.CallerContext, req dto.SetOpeningFundRequest) (*domain.OpeningFund, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningFund), args.Error(1)
}

func (m *MockSourceLedgerService) GetOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) (*domain.OpeningFund, error) {
	args := m.Called(ctx, caller, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningFund), args.Error(1)
}

func (m *MockSourceLedgerService) UpdateOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery, req dto.UpdateOpeningFundRequest) (*domain.OpeningFund, error) {
	args := m.Called(ctx, caller, query, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningFund), args.Error(1)
}

func (m *MockSourceLedgerService) DeleteOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) error {
	args := m.Called(ctx, caller, query)
	return args.Error(0)
}

var _ portssvc.SourceLedgerSvcFacade = (*MockSourceLedgerService)(nil)
