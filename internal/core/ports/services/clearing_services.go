package services

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClearingReaderSvc defines read operations of the clearing engine
type ClearingReaderSvc interface {
	// UnassignedAmount returns the remaining capacity of a clearable:
	// its own amount minus the sum of assignments recorded against it.
	// Clearables belonging to another entity are reported as not found.
	UnassignedAmount(ctx context.Context, entityID string, source domain.ClearableRef) (decimal.Decimal, error)

	// ListAssignmentsBySource retrieves the assignments recorded against a
	// clearable source, oldest first. Clearables belonging to another entity
	// are reported as not found.
	ListAssignmentsBySource(ctx context.Context, entityID string, source domain.ClearableRef) ([]domain.Assignment, error)
}

// ClearingWriterSvc defines write operations of the clearing engine
type ClearingWriterSvc interface {
	// Assign matches an amount of a clearable source against a clearing
	// transaction. Rejected with ErrNotSameCurrency on a currency mismatch
	// and apperrors.ErrOverAssignment when the amount exceeds either side's
	// remaining unassigned amount.
	Assign(ctx context.Context, entityID string, source domain.ClearableRef, clearingTransactionID string, amount decimal.Decimal, userID string) (*domain.Assignment, error)

	// AutoClear matches outstanding sources against clearing transactions
	// in FIFO order: sources oldest first, and within a source, clearing
	// transactions oldest first until each is exhausted.
	AutoClear(ctx context.Context, entityID string, sources []domain.ClearableRef, clearingTransactionIDs []string, userID string) ([]domain.Assignment, error)
}

// ClearingSvcFacade combines all clearing-related service interfaces
type ClearingSvcFacade interface {
	ClearingReaderSvc
	ClearingWriterSvc
}
