package services

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account within an entity.
	GetAccountByID(ctx context.Context, entityID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a given entity.
	ListAccounts(ctx context.Context, entityID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, entityID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
