package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary mirrors a row of daily_summaries.
type DailySummary struct {
	SummaryID      int64           `db:"summary_id"`
	BranchID       int64           `db:"branch_id"`
	SummaryDate    time.Time       `db:"summary_date"`
	GrossSales     decimal.Decimal `db:"gross_sales"`
	Cash           decimal.Decimal `db:"cash"`
	Credit         decimal.Decimal `db:"credit"`
	CreditPayments decimal.Decimal `db:"credit_payments"`
	Topups         decimal.Decimal `db:"topups"`
	WireTransfers  decimal.Decimal `db:"wire_transfers"`
	Notes          *string         `db:"notes"` // Nullable
	Expenses       decimal.Decimal `db:"expenses"`
	Deposits       decimal.Decimal `db:"deposits"`
	CardPayment    decimal.Decimal `db:"card_payment"`
	OpeningFund    decimal.Decimal `db:"opening_fund"`
	DayBalance     decimal.Decimal `db:"day_balance"`
	AuditFields
}

// ChangeHistoryEntry mirrors a row of daily_summary_history.
// summary_id carries no foreign key so rows outlive their summary.
type ChangeHistoryEntry struct {
	HistoryID  int64     `db:"history_id"`
	SummaryID  int64     `db:"summary_id"`
	FieldLabel string    `db:"field_label"`
	OldValue   string    `db:"old_value"`
	NewValue   string    `db:"new_value"`
	ChangedBy  string    `db:"changed_by"`
	ChangedAt  time.Time `db:"changed_at"`
}
