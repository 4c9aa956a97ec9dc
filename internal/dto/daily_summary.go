package dto

import (
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDailySummaryRequest defines the data needed to reconcile a new day.
// Derived totals (expenses, deposits, card payment, opening fund) are never accepted from the client.
type CreateDailySummaryRequest struct {
	BranchID       *int64           `json:"branchID" binding:"omitempty,gt=0"` // Optional for employees, defaults to their branch
	Date           string           `json:"date" binding:"required,calendar_date"`
	GrossSales     *decimal.Decimal `json:"grossSales"` // Absent means zero
	Cash           *decimal.Decimal `json:"cash"`
	Credit         *decimal.Decimal `json:"credit"`
	CreditPayments *decimal.Decimal `json:"creditPayments"`
	Topups         *decimal.Decimal `json:"topups"`
	WireTransfers  *decimal.Decimal `json:"wireTransfers"`
	Notes          *string          `json:"notes" binding:"omitempty,max=2000"`
}

// ToSummaryFields converts the entered fields into the domain merge set.
func (r CreateDailySummaryRequest) ToSummaryFields() domain.SummaryFields {
	return domain.SummaryFields{
		GrossSales:     r.GrossSales,
		Cash:           r.Cash,
		Credit:         r.Credit,
		CreditPayments: r.CreditPayments,
		Topups:         r.Topups,
		WireTransfers:  r.WireTransfers,
		Notes:          r.Notes,
	}
}

// UpdateDailySummaryRequest defines the fields an employee may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateDailySummaryRequest struct {
	GrossSales     *decimal.Decimal `json:"grossSales"`
	Cash           *decimal.Decimal `json:"cash"`
	Credit         *decimal.Decimal `json:"credit"`
	CreditPayments *decimal.Decimal `json:"creditPayments"`
	Topups         *decimal.Decimal `json:"topups"`
	WireTransfers  *decimal.Decimal `json:"wireTransfers"`
	Notes          *string          `json:"notes" binding:"omitempty,max=2000"`
}

// ToSummaryFields converts the request into the domain merge set.
func (r UpdateDailySummaryRequest) ToSummaryFields() domain.SummaryFields {
	return domain.SummaryFields{
		GrossSales:     r.GrossSales,
		Cash:           r.Cash,
		Credit:         r.Credit,
		CreditPayments: r.CreditPayments,
		Topups:         r.Topups,
		WireTransfers:  r.WireTransfers,
		Notes:          r.Notes,
	}
}

// ListDailySummariesParams defines the query parameters of a summary listing.
type ListDailySummariesParams struct {
	BranchID *int64 `form:"branchID" binding:"omitempty,gt=0"`
	From     string `form:"from" binding:"omitempty,calendar_date"`
	To       string `form:"to" binding:"omitempty,calendar_date"`
	Limit    int    `form:"limit,default=31" binding:"omitempty,min=1,max=366"`
	Offset   int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// DailySummaryResponse defines the data returned for a daily summary.
type DailySummaryResponse struct {
	SummaryID      int64           `json:"summaryID"`
	BranchID       int64           `json:"branchID"`
	Date           string          `json:"date"`
	GrossSales     decimal.Decimal `json:"grossSales"`
	Cash           decimal.Decimal `json:"cash"`
	Credit         decimal.Decimal `json:"credit"`
	CreditPayments decimal.Decimal `json:"creditPayments"`
	Topups         decimal.Decimal `json:"topups"`
	WireTransfers  decimal.Decimal `json:"wireTransfers"`
	Notes          *string         `json:"notes"`
	Expenses       decimal.Decimal `json:"expenses"`
	Deposits       decimal.Decimal `json:"deposits"`
	CardPayment    decimal.Decimal `json:"cardPayment"`
	OpeningFund    decimal.Decimal `json:"openingFund"`
	DayBalance     decimal.Decimal `json:"dayBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// UpdateDailySummaryResponse returns the updated summary with the history entries the update produced.
type UpdateDailySummaryResponse struct {
	Summary DailySummaryResponse         `json:"summary"`
	Changes []ChangeHistoryEntryResponse `json:"changes"`
}

// ListDailySummariesResponse wraps a summary listing.
type ListDailySummariesResponse struct {
	Summaries []DailySummaryResponse `json:"summaries"`
}

// ToDailySummaryResponse converts a domain.DailySummary to DailySummaryResponse DTO
func ToDailySummaryResponse(s *domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		SummaryID:      s.SummaryID,
		BranchID:       s.BranchID,
		Date:           s.SummaryDate.Format(domain.CalendarDateLayout),
		GrossSales:     s.GrossSales,
		Cash:           s.Cash,
		Credit:         s.Credit,
		CreditPayments: s.CreditPayments,
		Topups:         s.Topups,
		WireTransfers:  s.WireTransfers,
		Notes:          s.Notes,
		Expenses:       s.Expenses,
		Deposits:       s.Deposits,
		CardPayment:    s.CardPayment,
		OpeningFund:    s.OpeningFund,
		DayBalance:     s.DayBalance,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
		LastUpdatedAt:  s.LastUpdatedAt,
		LastUpdatedBy:  s.LastUpdatedBy,
	}
}

// ToListDailySummariesResponse converts a slice of domain.DailySummary to the list DTO
func ToListDailySummariesResponse(summaries []domain.DailySummary) ListDailySummariesResponse {
	res := make([]DailySummaryResponse, len(summaries))
	for i := range summaries {
		res[i] = ToDailySummaryResponse(&summaries[i])
	}
	return ListDailySummariesResponse{Summaries: res}
}
