package repositories

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// ReportingPeriodReader defines read operations for reporting period data
type ReportingPeriodReader interface {
	// FindReportingPeriodByID retrieves a specific reporting period.
	FindReportingPeriodByID(ctx context.Context, reportingPeriodID string) (*domain.ReportingPeriod, error)

	// FindReportingPeriodByYear retrieves the entity's period for a calendar year.
	FindReportingPeriodByYear(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error)
}

// ReportingPeriodWriter defines write operations for reporting period data
type ReportingPeriodWriter interface {
	// SaveReportingPeriod persists a new reporting period.
	SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error
}

// ReportingPeriodRepositoryFacade combines all reporting period repository interfaces
type ReportingPeriodRepositoryFacade interface {
	ReportingPeriodReader
	ReportingPeriodWriter
}
