package domain

import "time"

// ChangeHistoryEntry records one field of a DailySummary changing value.
// Entries are append-only and survive deletion of the summary.
type ChangeHistoryEntry struct {
	HistoryID  int64     `json:"historyID"`
	SummaryID  int64     `json:"summaryID"`
	FieldLabel string    `json:"fieldLabel"`
	OldValue   string    `json:"oldValue"`
	NewValue   string    `json:"newValue"`
	ChangedBy  string    `json:"changedBy"`
	ChangedAt  time.Time `json:"changedAt"`
}
