package mapping

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/models"
)

// ToModelAssignment converts a domain Assignment to a model Assignment
func ToModelAssignment(d domain.Assignment) models.Assignment {
	return models.Assignment{
		AssignmentID:           d.AssignmentID,
		EntityID:               d.EntityID,
		SourceKind:             string(d.Source.Kind),
		SourceID:               d.Source.ID,
		ClearedByTransactionID: d.ClearedByTransactionID,
		Amount:                 d.Amount,
		CurrencyCode:           d.CurrencyCode,
		AssignedAt:             d.AssignedAt,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignment converts a model Assignment to a domain Assignment
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	return domain.Assignment{
		AssignmentID: m.AssignmentID,
		EntityID:     m.EntityID,
		Source: domain.ClearableRef{
			Kind: domain.ClearableKind(m.SourceKind),
			ID:   m.SourceID,
		},
		ClearedByTransactionID: m.ClearedByTransactionID,
		Amount:                 m.Amount,
		CurrencyCode:           m.CurrencyCode,
		AssignedAt:             m.AssignedAt,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssignmentSlice converts a slice of model Assignments to domain Assignments
func ToDomainAssignmentSlice(ms []models.Assignment) []domain.Assignment {
	ds := make([]domain.Assignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignment(m)
	}
	return ds
}
