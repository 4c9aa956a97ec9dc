package services

import (
	"context"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
)

// MovementSvc records and lists sale/expense movements
type MovementSvc interface {
	RecordMovement(ctx context.Context, caller domain.CallerContext, req dto.CreateMovementRequest) (*domain.Movement, error)
	ListMovements(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.Movement, error)
}

// CardChargeSvc records and lists card charges
type CardChargeSvc interface {
	RecordCardCharge(ctx context.Context, caller domain.CallerContext, req dto.CreateCardChargeRequest) (*domain.CardCharge, error)
	ListCardCharges(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.CardCharge, error)
}

// BankDepositSvc records and lists bank deposits
type BankDepositSvc interface {
	RecordBankDeposit(ctx context.Context, caller domain.CallerContext, req dto.CreateBankDepositRequest) (*domain.BankDeposit, error)
	ListBankDeposits(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) ([]domain.BankDeposit, error)
}

// OpeningFundSvc manages the opening cash fund of a branch and day
type OpeningFundSvc interface {
	SetOpeningFund(ctx context.Context, caller domain.CallerContext, req dto.SetOpeningFundRequest) (*domain.OpeningFund, error)
	GetOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) (*domain.OpeningFund, error)
	UpdateOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery, req dto.UpdateOpeningFundRequest) (*domain.OpeningFund, error)
	// DeleteOpeningFund is restricted to administrators.
	DeleteOpeningFund(ctx context.Context, caller domain.CallerContext, query dto.SourceLedgerQuery) error
}

// SourceLedgerSvcFacade combines the source ledger services
type SourceLedgerSvcFacade interface {
	MovementSvc
	CardChargeSvc
	BankDepositSvc
	OpeningFundSvc
}
