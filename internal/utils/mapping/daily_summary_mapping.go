package mapping

import (
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/models"
)

// ToModelDailySummary converts a domain DailySummary to a model DailySummary.
// The date is normalized to midnight UTC so it matches the DATE column.
func ToModelDailySummary(d domain.DailySummary) models.DailySummary {
	return models.DailySummary{
		SummaryID:      d.SummaryID,
		BranchID:       d.BranchID,
		SummaryDate:    domain.NormalizeDate(d.SummaryDate),
		GrossSales:     d.GrossSales,
		Cash:           d.Cash,
		Credit:         d.Credit,
		CreditPayments: d.CreditPayments,
		Topups:         d.Topups,
		WireTransfers:  d.WireTransfers,
		Notes:          d.Notes,
		Expenses:       d.Expenses,
		Deposits:       d.Deposits,
		CardPayment:    d.CardPayment,
		OpeningFund:    d.OpeningFund,
		DayBalance:     d.DayBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailySummary converts a model DailySummary to a domain DailySummary
func ToDomainDailySummary(m models.DailySummary) domain.DailySummary {
	return domain.DailySummary{
		SummaryID:      m.SummaryID,
		BranchID:       m.BranchID,
		SummaryDate:    domain.NormalizeDate(m.SummaryDate),
		GrossSales:     m.GrossSales,
		Cash:           m.Cash,
		Credit:         m.Credit,
		CreditPayments: m.CreditPayments,
		Topups:         m.Topups,
		WireTransfers:  m.WireTransfers,
		Notes:          m.Notes,
		Expenses:       m.Expenses,
		Deposits:       m.Deposits,
		CardPayment:    m.CardPayment,
		OpeningFund:    m.OpeningFund,
		DayBalance:     m.DayBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailySummarySlice converts a slice of model summaries
func ToDomainDailySummarySlice(ms []models.DailySummary) []domain.DailySummary {
	ds := make([]domain.DailySummary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailySummary(m)
	}
	return ds
}

// ToModelChangeHistoryEntry converts a domain ChangeHistoryEntry to its model
func ToModelChangeHistoryEntry(d domain.ChangeHistoryEntry) models.ChangeHistoryEntry {
	return models.ChangeHistoryEntry{
		HistoryID:  d.HistoryID,
		SummaryID:  d.SummaryID,
		FieldLabel: d.FieldLabel,
		OldValue:   d.OldValue,
		NewValue:   d.NewValue,
		ChangedBy:  d.ChangedBy,
		ChangedAt:  d.ChangedAt,
	}
}

// ToDomainChangeHistoryEntry converts a model ChangeHistoryEntry to its domain form
func ToDomainChangeHistoryEntry(m models.ChangeHistoryEntry) domain.ChangeHistoryEntry {
	return domain.ChangeHistoryEntry{
		HistoryID:  m.HistoryID,
		SummaryID:  m.SummaryID,
		FieldLabel: m.FieldLabel,
		OldValue:   m.OldValue,
		NewValue:   m.NewValue,
		ChangedBy:  m.ChangedBy,
		ChangedAt:  m.ChangedAt,
	}
}
