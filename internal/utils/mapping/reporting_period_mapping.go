package mapping

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/models"
)

// ToModelReportingPeriod converts a domain ReportingPeriod to a model ReportingPeriod
func ToModelReportingPeriod(d domain.ReportingPeriod) models.ReportingPeriod {
	return models.ReportingPeriod{
		ReportingPeriodID: d.ReportingPeriodID,
		EntityID:          d.EntityID,
		CalendarYear:      d.CalendarYear,
		PeriodStart:       d.PeriodStart,
		Status:            string(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReportingPeriod converts a model ReportingPeriod to a domain ReportingPeriod
func ToDomainReportingPeriod(m models.ReportingPeriod) domain.ReportingPeriod {
	return domain.ReportingPeriod{
		ReportingPeriodID: m.ReportingPeriodID,
		EntityID:          m.EntityID,
		CalendarYear:      m.CalendarYear,
		PeriodStart:       m.PeriodStart,
		Status:            domain.ReportingPeriodStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
