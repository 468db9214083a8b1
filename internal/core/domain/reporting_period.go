package domain

import "time"

// ReportingPeriodStatus indicates whether a fiscal year is still accepting postings.
type ReportingPeriodStatus string

const (
	PeriodOpen   ReportingPeriodStatus = "OPEN"
	PeriodClosed ReportingPeriodStatus = "CLOSED"
)

// ReportingPeriod is a fiscal year window for an Entity, identified by
// calendar year. Immutable once transactions reference it, except for the
// closing workflow which only flips the status.
type ReportingPeriod struct {
	ReportingPeriodID string                `json:"reportingPeriodID"` // Primary Key (e.g., UUID)
	EntityID          string                `json:"entityID"`          // FK -> entities.entity_id
	CalendarYear      int                   `json:"calendarYear"`      // e.g., 2025
	PeriodStart       time.Time             `json:"periodStart"`       // First day of the fiscal year
	Status            ReportingPeriodStatus `json:"status"`            // Default: OPEN
	AuditFields
}
