package repositories

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignmentReader defines read operations for assignment data
type AssignmentReader interface {
	// ListAssignmentsBySource retrieves the assignments recorded against a
	// clearable source, oldest first.
	ListAssignmentsBySource(ctx context.Context, source domain.ClearableRef) ([]domain.Assignment, error)

	// ListAssignmentsByClearedBy retrieves the assignments cleared by a
	// transaction, oldest first.
	ListAssignmentsByClearedBy(ctx context.Context, transactionID string) ([]domain.Assignment, error)

	// SumAssignedToSource returns the total amount already assigned against
	// a clearable source. Always computed from the assignment rows, never
	// from a running counter.
	SumAssignedToSource(ctx context.Context, source domain.ClearableRef) (decimal.Decimal, error)

	// SumAssignedToClearedBy returns the total amount a clearing transaction
	// has already absorbed.
	SumAssignedToClearedBy(ctx context.Context, transactionID string) (decimal.Decimal, error)
}

// AssignmentWriter defines write operations for assignment data
type AssignmentWriter interface {
	// CreateAssignment persists an assignment after an atomic capacity
	// check: within one database transaction the source row and the
	// clearing transaction row are locked, both unassigned amounts are
	// recomputed from the existing assignment rows, and the insert is
	// refused with apperrors.ErrOverAssignment if the new amount would
	// exceed either side's remaining capacity.
	CreateAssignment(ctx context.Context, assignment domain.Assignment) error
}

// AssignmentRepositoryFacade combines all assignment-related repository interfaces
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
