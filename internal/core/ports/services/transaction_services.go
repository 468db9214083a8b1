package services

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction within an entity.
	GetTransactionByID(ctx context.Context, entityID string, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves a paginated list of transactions
	// for an account, oldest first.
	ListTransactionsByAccount(ctx context.Context, entityID string, accountID string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, entityID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// RecycleTransaction soft-deletes a transaction together with any
	// assignments referencing it.
	RecycleTransaction(ctx context.Context, entityID string, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
