package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClearableRefDTO identifies a clearable source in API requests.
type ClearableRefDTO struct {
	Kind string `json:"kind" binding:"required,oneof=TRANSACTION BALANCE"`
	ID   string `json:"id" binding:"required"`
}

// ToDomain converts the DTO reference into the domain tagged variant.
func (r ClearableRefDTO) ToDomain() domain.ClearableRef {
	return domain.ClearableRef{Kind: domain.ClearableKind(r.Kind), ID: r.ID}
}

// CreateAssignmentRequest defines the data needed to clear an amount of a
// source against a clearing transaction.
type CreateAssignmentRequest struct {
	Source                 ClearableRefDTO  `json:"source" binding:"required"`
	ClearedByTransactionID string           `json:"clearedByTransactionID" binding:"required"`
	Amount                 *decimal.Decimal `json:"amount" binding:"required"`
}

// AutoClearRequest defines the inputs of the FIFO auto-clearing operation.
type AutoClearRequest struct {
	Sources                []ClearableRefDTO `json:"sources" binding:"required,min=1,dive"`
	ClearingTransactionIDs []string          `json:"clearingTransactionIDs" binding:"required,min=1"`
}

// AssignmentResponse defines the data returned for an assignment.
type AssignmentResponse struct {
	AssignmentID           string          `json:"assignmentID"`
	EntityID               string          `json:"entityID"`
	SourceKind             string          `json:"sourceKind"`
	SourceID               string          `json:"sourceID"`
	ClearedByTransactionID string          `json:"clearedByTransactionID"`
	Amount                 decimal.Decimal `json:"amount"`
	CurrencyCode           string          `json:"currencyCode"`
	AssignedAt             time.Time       `json:"assignedAt"`
}

// ToAssignmentResponse converts a domain.Assignment to an AssignmentResponse DTO.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:           a.AssignmentID,
		EntityID:               a.EntityID,
		SourceKind:             string(a.Source.Kind),
		SourceID:               a.Source.ID,
		ClearedByTransactionID: a.ClearedByTransactionID,
		Amount:                 a.Amount,
		CurrencyCode:           a.CurrencyCode,
		AssignedAt:             a.AssignedAt,
	}
}

// ToListAssignmentResponse converts a slice of domain assignments to DTOs.
func ToListAssignmentResponse(assignments []domain.Assignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		res[i] = ToAssignmentResponse(&assignments[i])
	}
	return res
}

// UnassignedAmountResponse reports the remaining capacity of a clearable.
type UnassignedAmountResponse struct {
	SourceKind       string          `json:"sourceKind"`
	SourceID         string          `json:"sourceID"`
	UnassignedAmount decimal.Decimal `json:"unassignedAmount"`
}
