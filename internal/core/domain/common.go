package domain

import (
	"fmt"
	"time"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// CalendarDateLayout is the wire format of a calendar day.
const CalendarDateLayout = "2006-01-02"

// NormalizeDate truncates t to midnight UTC of the same calendar day.
// The calendar day is taken from t's own location before converting.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate parses a YYYY-MM-DD string into midnight UTC.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// DayWindow returns the half-open window [start, end) covering the calendar day of date in UTC.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := NormalizeDate(date)
	return start, start.AddDate(0, 0, 1)
}
