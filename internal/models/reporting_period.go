package models

import "time"

// ReportingPeriod represents a fiscal year window for an entity.
type ReportingPeriod struct {
	ReportingPeriodID string    `db:"reporting_period_id"`
	EntityID          string    `db:"entity_id"`
	CalendarYear      int       `db:"calendar_year"`
	PeriodStart       time.Time `db:"period_start"`
	Status            string    `db:"status"` // OPEN or CLOSED
	AuditFields
}
