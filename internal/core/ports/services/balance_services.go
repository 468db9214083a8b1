package services

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// BalanceReaderSvc defines read operations for opening balances
type BalanceReaderSvc interface {
	// GetBalanceByID retrieves a specific balance within an entity.
	GetBalanceByID(ctx context.Context, entityID string, balanceID string) (*domain.Balance, error)

	// GetBalanceByTransactionNo retrieves a balance by its synthetic
	// transaction number, which is unique per entity.
	GetBalanceByTransactionNo(ctx context.Context, entityID string, transactionNo string) (*domain.Balance, error)

	// ListBalancesByPeriod retrieves the balances of a reporting period.
	ListBalancesByPeriod(ctx context.Context, entityID string, reportingPeriodID string) ([]domain.Balance, error)
}

// BalanceWriterSvc defines write operations for opening balances
type BalanceWriterSvc interface {
	// NewBalance constructs a balance from partial attributes, filling any
	// absent field with the entity's defaults (currency, reporting period,
	// exchange rate, journal transaction type, debit balance type, derived
	// transaction number). The result is defaulted but not yet validated.
	NewBalance(ctx context.Context, entityID string, req dto.CreateBalanceRequest, creatorUserID string) (*domain.Balance, error)

	// ValidateAndSave runs the full invariant check sequence on a balance
	// and persists it only if every check passes.
	ValidateAndSave(ctx context.Context, balance *domain.Balance) error

	// CreateBalance is NewBalance followed by ValidateAndSave.
	CreateBalance(ctx context.Context, entityID string, req dto.CreateBalanceRequest, creatorUserID string) (*domain.Balance, error)

	// RecycleBalance soft-deletes a balance together with its assignments.
	RecycleBalance(ctx context.Context, entityID string, balanceID string, userID string) error
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
