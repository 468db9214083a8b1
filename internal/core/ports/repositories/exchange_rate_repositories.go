package repositories

import (
	"context"
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves a specific exchange rate record.
	FindExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error)

	// FindRateForDate retrieves the applicable rate for a currency as of a
	// date: the most recent rate whose valid-from date does not exceed asOf.
	// Returns apperrors.ErrNotFound when no rate applies.
	FindRateForDate(ctx context.Context, entityID string, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
