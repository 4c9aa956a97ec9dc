package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackedField identifies a DailySummary field whose changes are recorded.
type TrackedField int

const (
	FieldGrossSales TrackedField = iota
	FieldCash
	FieldCredit
	FieldCreditPayments
	FieldTopups
	FieldCardPayment
	FieldWireTransfers
	FieldExpenses
	FieldDeposits
	FieldNotes
	FieldOpeningFund
)

// AmountScale is the number of decimal places money is stored and compared with.
const AmountScale = 2

type trackedField struct {
	field TrackedField
	label string
	value func(DailySummary) string
}

func amount(get func(DailySummary) decimal.Decimal) func(DailySummary) string {
	return func(s DailySummary) string { return CanonicalAmount(get(s)) }
}

// trackedFields is the ordered, exhaustive set of audited fields.
// DayBalance is left out: it is a pure function of tracked fields.
var trackedFields = []trackedField{
	{FieldGrossSales, "Gross Sales", amount(func(s DailySummary) decimal.Decimal { return s.GrossSales })},
	{FieldCash, "Cash", amount(func(s DailySummary) decimal.Decimal { return s.Cash })},
	{FieldCredit, "Credit", amount(func(s DailySummary) decimal.Decimal { return s.Credit })},
	{FieldCreditPayments, "Credit Payments", amount(func(s DailySummary) decimal.Decimal { return s.CreditPayments })},
	{FieldTopups, "Topups", amount(func(s DailySummary) decimal.Decimal { return s.Topups })},
	{FieldCardPayment, "Card Payment", amount(func(s DailySummary) decimal.Decimal { return s.CardPayment })},
	{FieldWireTransfers, "Wire Transfers", amount(func(s DailySummary) decimal.Decimal { return s.WireTransfers })},
	{FieldExpenses, "Expenses", amount(func(s DailySummary) decimal.Decimal { return s.Expenses })},
	{FieldDeposits, "Deposits", amount(func(s DailySummary) decimal.Decimal { return s.Deposits })},
	{FieldNotes, "Notes", func(s DailySummary) string {
		if s.Notes == nil {
			return ""
		}
		return *s.Notes
	}},
	{FieldOpeningFund, "Opening Fund", amount(func(s DailySummary) decimal.Decimal { return s.OpeningFund })},
}

// Label returns the human readable name used in change history.
func (f TrackedField) Label() string {
	for _, tf := range trackedFields {
		if tf.field == f {
			return tf.label
		}
	}
	return ""
}

// TrackedFieldCount is the number of audited fields.
func TrackedFieldCount() int {
	return len(trackedFields)
}

// CanonicalAmount renders d with a fixed scale so 5, 5.0 and 5.00 compare equal.
func CanonicalAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountScale)
}

// FieldChange is one detected difference between two summary snapshots.
type FieldChange struct {
	Field    TrackedField
	Label    string
	OldValue string
	NewValue string
}

// DiffSummaries compares before and after over the tracked fields, in table order.
func DiffSummaries(before, after DailySummary) []FieldChange {
	var changes []FieldChange
	for _, tf := range trackedFields {
		oldValue, newValue := tf.value(before), tf.value(after)
		if oldValue == newValue {
			continue
		}
		changes = append(changes, FieldChange{
			Field:    tf.field,
			Label:    tf.label,
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	return changes
}

// ToHistoryEntries stamps changes with the summary, actor and time they belong to.
func ToHistoryEntries(summaryID int64, changes []FieldChange, changedBy string, changedAt time.Time) []ChangeHistoryEntry {
	entries := make([]ChangeHistoryEntry, 0, len(changes))
	for _, c := range changes {
		entries = append(entries, ChangeHistoryEntry{
			SummaryID:  summaryID,
			FieldLabel: c.Label,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangedBy:  changedBy,
			ChangedAt:  changedAt,
		})
	}
	return entries
}
