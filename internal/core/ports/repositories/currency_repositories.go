package repositories

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its code within an entity.
	FindCurrencyByCode(ctx context.Context, entityID string, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies registered for an entity.
	ListCurrencies(ctx context.Context, entityID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
