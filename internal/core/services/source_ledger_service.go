package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
)

type sourceLedgerService struct {
	BaseService
	ledgerRepo portsrepo.SourceLedgerRepositoryFacade
	now        func() time.Time
}

// NewSourceLedgerService creates the service that feeds the source ledgers.
// branchReader may be nil, in which case branch existence is not checked.
func NewSourceLedgerService(ledgerRepo portsrepo.SourceLedgerRepositoryFacade, branchReader portsrepo.BranchReader) portssvc.SourceLedgerSvcFacade {
	return &sourceLedgerService{
		BaseService: BaseService{BranchReader: branchReader},
		ledgerRepo:  ledgerRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.SourceLedgerSvcFacade = (*sourceLedgerService)(nil)

func (s *sourceLedgerService) audit(caller domain.CallerContext) domain.AuditFields {
	now := s.now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     caller.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: caller.UserID,
	}
}

// resolveDay validates the branch and date shared by every source ledger operation.
func (s *sourceLedgerService) resolveDay(ctx context.Context, caller domain.CallerContext, branchID *int64, date string) (int64, time.Time, error) {
	day, err := parseDateField("date", date)
	if err != nil {
		return 0, time.Time{}, err
	}
	resolved, err := s.ResolveBranch(ctx, caller, branchID)
	if err != nil {
		return 0, time.Time{}, err
	}
	return resolved, day, nil
}

func (s *sourceLedgerService) RecordMovement(ctx context.Context, caller domain.CallerContext, req dto.CreateMovementRequest) (*domain.Movement, error) {
	branchID, day, err := s.resolveDay(ctx, caller, req.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount("amount", req.Amount, false)
	if err != nil {
		return nil, err
	}
	switch req.Kind {
	case domain.MovementSale, domain.MovementExpense, domain.MovementDeposit, domain.MovementCashFund:
	default:
		return nil, apperrors.NewFieldValidationError("kind", fmt.Sprintf("unknown movement kind %q", req.Kind))
	}

	movement := domain.Movement{
		BranchID:     branchID,
		MovementDate: day,
		Kind:         req.Kind,
		Amount:       amount,
		Description:  req.Description,
		AuditFields:  s.audit(caller),
	}
	id, err := s.ledgerRepo.SaveMovement(ctx, movement)
	if err != nil {
		s.LogError(ctx, err, "Failed to save movement", slog.Int64("branch_id", branchID))
		return nil, err
	}
	movement.MovementID = id
	s.LogInfo(ctx, "Movement recorded",
		slog.Int64("movement_id", id),
		slog.Int64("branch_id", branchID),
		slog.String("kind", string(req.Kind)))
	return &movement, nil
}

func (s *sourceLedgerService) ListMovements(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.Movement, error) {
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return nil, err
	}
	start, end := domain.DayWindow(day)
	return s.ledgerRepo.ListMovementsByBranchAndDateRange(ctx, nil, branchID, start, end)
}

func (s *sourceLedgerService) RecordCardCharge(ctx context.Context, caller domain.CallerContext, req dto.CreateCardChargeRequest) (*domain.CardCharge, error) {
	branchID, day, err := s.resolveDay(ctx, caller, req.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount("amount", req.Amount, false)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.CardChargeSuccessful && req.Status != domain.CardChargePending {
		return nil, apperrors.NewFieldValidationError("status", fmt.Sprintf("unknown card charge status %q", req.Status))
	}

	charge := domain.CardCharge{
		BranchID:    branchID,
		ChargeDate:  day,
		Amount:      amount,
		Status:      req.Status,
		Reference:   req.Reference,
		AuditFields: s.audit(caller),
	}
	id, err := s.ledgerRepo.SaveCardCharge(ctx, charge)
	if err != nil {
		s.LogError(ctx, err, "Failed to save card charge", slog.Int64("branch_id", branchID))
		return nil, err
	}
	charge.CardChargeID = id
	return &charge, nil
}

func (s *sourceLedgerService) ListCardCharges(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.CardCharge, error) {
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return nil, err
	}
	start, end := domain.DayWindow(day)
	return s.ledgerRepo.ListCardChargesByBranchAndDateRange(ctx, nil, branchID, start, end)
}

func (s *sourceLedgerService) RecordBankDeposit(ctx context.Context, caller domain.CallerContext, req dto.CreateBankDepositRequest) (*domain.BankDeposit, error) {
	branchID, day, err := s.resolveDay(ctx, caller, req.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount("amount", req.Amount, false)
	if err != nil {
		return nil, err
	}

	deposit := domain.BankDeposit{
		BranchID:    branchID,
		DepositDate: day,
		Amount:      amount,
		Reference:   req.Reference,
		AuditFields: s.audit(caller),
	}
	id, err := s.ledgerRepo.SaveBankDeposit(ctx, deposit)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bank deposit", slog.Int64("branch_id", branchID))
		return nil, err
	}
	deposit.BankDepositID = id
	return &deposit, nil
}

func (s *sourceLedgerService) ListBankDeposits(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.BankDeposit, error) {
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return nil, err
	}
	start, end := domain.DayWindow(day)
	return s.ledgerRepo.ListBankDepositsByBranchAndDateRange(ctx, nil, branchID, start, end)
}

func (s *sourceLedgerService) SetOpeningFund(ctx context.Context, caller domain.CallerContext, req dto.SetOpeningFundRequest) (*domain.OpeningFund, error) {
	branchID, day, err := s.resolveDay(ctx, caller, req.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount("amount", req.Amount, true)
	if err != nil {
		return nil, err
	}

	fund := domain.OpeningFund{
		BranchID:    branchID,
		FundDate:    day,
		Amount:      amount,
		AuditFields: s.audit(caller),
	}
	id, err := s.ledgerRepo.SaveOpeningFund(ctx, fund)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save opening fund", slog.Int64("branch_id", branchID))
		}
		return nil, err
	}
	fund.OpeningFundID = id
	s.LogInfo(ctx, "Opening fund set",
		slog.Int64("branch_id", branchID),
		slog.String("date", req.Date),
		slog.String("amount", amount.String()))
	return &fund, nil
}

func (s *sourceLedgerService) GetOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) (*domain.OpeningFund, error) {
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindOpeningFund(ctx, branchID, day)
}

func (s *sourceLedgerService) UpdateOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery, req dto.UpdateOpeningFundRequest) (*domain.OpeningFund, error) {
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount("amount", req.Amount, true)
	if err != nil {
		return nil, err
	}

	fund, err := s.ledgerRepo.FindOpeningFund(ctx, branchID, day)
	if err != nil {
		return nil, err
	}
	fund.Amount = amount
	fund.LastUpdatedAt = s.now()
	fund.LastUpdatedBy = caller.UserID
	if err := s.ledgerRepo.UpdateOpeningFund(ctx, *fund); err != nil {
		s.LogError(ctx, err, "Failed to update opening fund", slog.Int64("opening_fund_id", fund.OpeningFundID))
		return nil, err
	}
	return fund, nil
}

func (s *sourceLedgerService) DeleteOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) error {
	if err := s.RequireAdmin(ctx, caller, "deleting an opening fund"); err != nil {
		return err
	}
	branchID, day, err := s.resolveDay(ctx, caller, query.BranchID, query.Date)
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.DeleteOpeningFund(ctx, branchID, day); err != nil {
		return err
	}
	s.LogInfo(ctx, "Opening fund deleted",
		slog.Int64("branch_id", branchID),
		slog.String("date", query.Date),
		slog.String("user_id", caller.UserID))
	return nil
}
