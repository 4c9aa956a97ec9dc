package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is the reconciled ledger of one branch for one calendar day.
// There is at most one per (BranchID, SummaryDate).
type DailySummary struct {
	SummaryID   int64     `json:"summaryID"`
	BranchID    int64     `json:"branchID"`
	SummaryDate time.Time `json:"summaryDate"` // midnight UTC

	// Entered by employees.
	GrossSales     decimal.Decimal `json:"grossSales"`
	Cash           decimal.Decimal `json:"cash"`
	Credit         decimal.Decimal `json:"credit"`
	CreditPayments decimal.Decimal `json:"creditPayments"`
	Topups         decimal.Decimal `json:"topups"`
	WireTransfers  decimal.Decimal `json:"wireTransfers"`
	Notes          *string         `json:"notes"`

	// Recomputed from the source ledgers on every create/update.
	Expenses    decimal.Decimal `json:"expenses"`
	Deposits    decimal.Decimal `json:"deposits"`
	CardPayment decimal.Decimal `json:"cardPayment"`
	OpeningFund decimal.Decimal `json:"openingFund"`

	DayBalance decimal.Decimal `json:"dayBalance"`
	AuditFields
}

// ComputeDayBalance returns grossSales - expenses + deposits + openingFund.
func ComputeDayBalance(grossSales, expenses, deposits, openingFund decimal.Decimal) decimal.Decimal {
	return grossSales.Sub(expenses).Add(deposits).Add(openingFund)
}

// ApplyAggregates replaces the derived fields with agg and recomputes the day balance.
func (s *DailySummary) ApplyAggregates(agg Aggregates) {
	s.Expenses = agg.Expenses
	s.Deposits = agg.Deposits
	s.CardPayment = agg.CardPayment
	s.OpeningFund = agg.OpeningFund
	s.RecomputeBalance()
}

// RecomputeBalance sets DayBalance from the current field values.
func (s *DailySummary) RecomputeBalance() {
	s.DayBalance = ComputeDayBalance(s.GrossSales, s.Expenses, s.Deposits, s.OpeningFund)
}

// MaxAmount bounds the magnitude of every stored amount (NUMERIC(14,2)), exclusive.
var MaxAmount = decimal.New(1, 12)

// RoundAmount rounds d half away from zero to AmountScale, the way the amount columns store it.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// AmountInRange reports whether d, once rounded, fits an amount column.
func AmountInRange(d decimal.Decimal) bool {
	return RoundAmount(d).Abs().LessThan(MaxAmount)
}

// SummaryFields are the employee-entered fields of an update. Nil means "keep the current value".
type SummaryFields struct {
	GrossSales     *decimal.Decimal
	Cash           *decimal.Decimal
	Credit         *decimal.Decimal
	CreditPayments *decimal.Decimal
	Topups         *decimal.Decimal
	WireTransfers  *decimal.Decimal
	Notes          *string
}

// Merge applies the non-nil fields of f onto s. Amounts are rounded to AmountScale
// and empty notes are stored as no notes.
func (s *DailySummary) Merge(f SummaryFields) {
	set := func(dst, src *decimal.Decimal) {
		if src != nil {
			*dst = RoundAmount(*src)
		}
	}
	set(&s.GrossSales, f.GrossSales)
	set(&s.Cash, f.Cash)
	set(&s.Credit, f.Credit)
	set(&s.CreditPayments, f.CreditPayments)
	set(&s.Topups, f.Topups)
	set(&s.WireTransfers, f.WireTransfers)
	if f.Notes != nil {
		if *f.Notes == "" {
			s.Notes = nil
		} else {
			notes := *f.Notes
			s.Notes = &notes
		}
	}
}

// OutOfRangeField returns the JSON name of the first amount of s that does not fit an
// amount column, or "" when all fit.
func (s *DailySummary) OutOfRangeField() string {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"grossSales", s.GrossSales},
		{"cash", s.Cash},
		{"credit", s.Credit},
		{"creditPayments", s.CreditPayments},
		{"topups", s.Topups},
		{"wireTransfers", s.WireTransfers},
		{"expenses", s.Expenses},
		{"deposits", s.Deposits},
		{"cardPayment", s.CardPayment},
		{"openingFund", s.OpeningFund},
		{"dayBalance", s.DayBalance},
	}
	for _, f := range fields {
		if !AmountInRange(f.value) {
			return f.name
		}
	}
	return ""
}
