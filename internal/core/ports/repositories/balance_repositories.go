package repositories

import (
	"context"
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// BalanceReader defines read operations for opening balance data
type BalanceReader interface {
	// FindBalanceByID retrieves a specific balance. Recycled (soft-deleted)
	// balances are not returned.
	FindBalanceByID(ctx context.Context, balanceID string) (*domain.Balance, error)

	// FindBalanceByTransactionNo retrieves a balance by its synthetic key.
	FindBalanceByTransactionNo(ctx context.Context, entityID string, transactionNo string) (*domain.Balance, error)

	// ListBalancesByPeriod retrieves the balances of a reporting period.
	ListBalancesByPeriod(ctx context.Context, entityID string, reportingPeriodID string) ([]domain.Balance, error)
}

// BalanceWriter defines write operations for opening balance data
type BalanceWriter interface {
	// SaveBalance persists a new balance. The caller validates first; the
	// repository only enforces the transaction_no uniqueness constraint and
	// maps it to apperrors.ErrDuplicate.
	SaveBalance(ctx context.Context, balance domain.Balance) error

	// RecycleBalance soft-deletes a balance and removes every assignment
	// whose source references it, within a single database transaction.
	RecycleBalance(ctx context.Context, balanceID string, userID string, now time.Time) error
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
