package repositories

import (
	"context"
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction. Recycled
	// (soft-deleted) transactions are not returned.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves a paginated list of transactions
	// for an account, oldest first.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// RecycleTransaction soft-deletes a transaction and removes every
	// assignment that references it, either as source or as clearing
	// transaction, within a single database transaction.
	RecycleTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
