package dto

import (
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SourceLedgerQuery selects the rows of one branch and calendar day.
type SourceLedgerQuery struct {
	BranchID *int64 `form:"branchID" binding:"omitempty,gt=0"`
	Date     string `form:"date" binding:"required,calendar_date"`
}

// CreateMovementRequest records a sale or expense.
type CreateMovementRequest struct {
	BranchID    *int64              `json:"branchID" binding:"omitempty,gt=0"`
	Date        string              `json:"date" binding:"required,calendar_date"`
	Kind        domain.MovementKind `json:"kind" binding:"required,oneof=SALE EXPENSE DEPOSIT CASH_FUND"`
	Amount      decimal.Decimal     `json:"amount"`
	Description string              `json:"description" binding:"max=500"`
}

// CreateCardChargeRequest records a card terminal charge.
type CreateCardChargeRequest struct {
	BranchID  *int64                  `json:"branchID" binding:"omitempty,gt=0"`
	Date      string                  `json:"date" binding:"required,calendar_date"`
	Amount    decimal.Decimal         `json:"amount"`
	Status    domain.CardChargeStatus `json:"status" binding:"required,oneof=SUCCESSFUL PENDING"`
	Reference string                  `json:"reference" binding:"max=100"`
}

// CreateBankDepositRequest records cash taken to the bank.
type CreateBankDepositRequest struct {
	BranchID  *int64          `json:"branchID" binding:"omitempty,gt=0"`
	Date      string          `json:"date" binding:"required,calendar_date"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference" binding:"max=100"`
}

// SetOpeningFundRequest sets the opening cash of a branch and day.
type SetOpeningFundRequest struct {
	BranchID *int64          `json:"branchID" binding:"omitempty,gt=0"`
	Date     string          `json:"date" binding:"required,calendar_date"`
	Amount   decimal.Decimal `json:"amount"`
}

// UpdateOpeningFundRequest changes the amount of an existing opening fund.
type UpdateOpeningFundRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID  int64               `json:"movementID"`
	BranchID    int64               `json:"branchID"`
	Date        string              `json:"date"`
	Kind        domain.MovementKind `json:"kind"`
	Amount      decimal.Decimal     `json:"amount"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
}

// CardChargeResponse defines the data returned for a card charge.
type CardChargeResponse struct {
	CardChargeID int64                   `json:"cardChargeID"`
	BranchID     int64                   `json:"branchID"`
	Date         string                  `json:"date"`
	Amount       decimal.Decimal         `json:"amount"`
	Status       domain.CardChargeStatus `json:"status"`
	Reference    string                  `json:"reference"`
	CreatedAt    time.Time               `json:"createdAt"`
	CreatedBy    string                  `json:"createdBy"`
}

// BankDepositResponse defines the data returned for a bank deposit.
type BankDepositResponse struct {
	BankDepositID int64           `json:"bankDepositID"`
	BranchID      int64           `json:"branchID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// OpeningFundResponse defines the data returned for an opening fund.
type OpeningFundResponse struct {
	OpeningFundID int64           `json:"openingFundID"`
	BranchID      int64           `json:"branchID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// AggregatesResponse defines the derived totals of a branch and day.
type AggregatesResponse struct {
	BranchID    int64               `json:"branchID"`
	Date        string              `json:"date"`
	Expenses    decimal.Decimal     `json:"expenses"`
	Deposits    decimal.Decimal     `json:"deposits"`
	CardPayment decimal.Decimal     `json:"cardPayment"`
	OpeningFund decimal.Decimal     `json:"openingFund"`
	Counts      domain.SourceCounts `json:"counts"`
}

func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		BranchID:    m.BranchID,
		Date:        m.MovementDate.Format(domain.CalendarDateLayout),
		Kind:        m.Kind,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

func ToMovementResponses(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i])
	}
	return res
}

func ToCardChargeResponse(c *domain.CardCharge) CardChargeResponse {
	return CardChargeResponse{
		CardChargeID: c.CardChargeID,
		BranchID:     c.BranchID,
		Date:         c.ChargeDate.Format(domain.CalendarDateLayout),
		Amount:       c.Amount,
		Status:       c.Status,
		Reference:    c.Reference,
		CreatedAt:    c.CreatedAt,
		CreatedBy:    c.CreatedBy,
	}
}

func ToCardChargeResponses(charges []domain.CardCharge) []CardChargeResponse {
	res := make([]CardChargeResponse, len(charges))
	for i := range charges {
		res[i] = ToCardChargeResponse(&charges[i])
	}
	return res
}

func ToBankDepositResponse(d *domain.BankDeposit) BankDepositResponse {
	return BankDepositResponse{
		BankDepositID: d.BankDepositID,
		BranchID:      d.BranchID,
		Date:          d.DepositDate.Format(domain.CalendarDateLayout),
		Amount:        d.Amount,
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

func ToBankDepositResponses(deposits []domain.BankDeposit) []BankDepositResponse {
	res := make([]BankDepositResponse, len(deposits))
	for i := range deposits {
		res[i] = ToBankDepositResponse(&deposits[i])
	}
	return res
}

func ToOpeningFundResponse(f *domain.OpeningFund) OpeningFundResponse {
	return OpeningFundResponse{
		OpeningFundID: f.OpeningFundID,
		BranchID:      f.BranchID,
		Date:          f.FundDate.Format(domain.CalendarDateLayout),
		Amount:        f.Amount,
		CreatedAt:     f.CreatedAt,
		CreatedBy:     f.CreatedBy,
		LastUpdatedAt: f.LastUpdatedAt,
		LastUpdatedBy: f.LastUpdatedBy,
	}
}

// ToAggregatesResponse converts aggregates of a branch and day to their DTO
func ToAggregatesResponse(agg *domain.Aggregates) AggregatesResponse {
	return AggregatesResponse{
		BranchID:    agg.BranchID,
		Date:        agg.Date.Format(domain.CalendarDateLayout),
		Expenses:    agg.Expenses,
		Deposits:    agg.Deposits,
		CardPayment: agg.CardPayment,
		OpeningFund: agg.OpeningFund,
		Counts:      agg.Counts,
	}
}
