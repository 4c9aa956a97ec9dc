package dto

import (
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// ListHistoryParams defines the query parameters for paging through a summary's history.
type ListHistoryParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ChangeHistoryEntryResponse defines the data returned for one audited change.
type ChangeHistoryEntryResponse struct {
	HistoryID int64     `json:"historyID"`
	SummaryID int64     `json:"summaryID"`
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

// ListHistoryResponse is one page of history entries.
type ListHistoryResponse struct {
	Entries   []ChangeHistoryEntryResponse `json:"entries"`
	NextToken *string                      `json:"nextToken,omitempty"`
}

// PurgeHistoryResponse reports how many entries an explicit purge removed.
type PurgeHistoryResponse struct {
	SummaryID int64 `json:"summaryID"`
	Purged    int64 `json:"purged"`
}

// ToChangeHistoryEntryResponse converts a domain.ChangeHistoryEntry to its DTO
func ToChangeHistoryEntryResponse(e *domain.ChangeHistoryEntry) ChangeHistoryEntryResponse {
	return ChangeHistoryEntryResponse{
		HistoryID: e.HistoryID,
		SummaryID: e.SummaryID,
		Field:     e.FieldLabel,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		ChangedBy: e.ChangedBy,
		ChangedAt: e.ChangedAt,
	}
}

// ToChangeHistoryEntryResponses converts a slice of entries.
func ToChangeHistoryEntryResponses(entries []domain.ChangeHistoryEntry) []ChangeHistoryEntryResponse {
	res := make([]ChangeHistoryEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToChangeHistoryEntryResponse(&entries[i])
	}
	return res
}
