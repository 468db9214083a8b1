package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// currencyService provides business logic for entity currencies.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	entityRepo   portsrepo.EntityReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, entityRepo portsrepo.EntityReader) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		entityRepo:   entityRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency registers a currency for an entity.
func (s *currencyService) CreateCurrency(ctx context.Context, entityID string, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.entityRepo.FindEntityByID(ctx, entityID); err != nil {
		return nil, fmt.Errorf("failed to find entity %s: %w", entityID, err)
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		EntityID:     entityID,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("currency_code", req.CurrencyCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}

	logger.Info("Currency created", slog.String("entity_id", entityID), slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, entityID string, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, entityID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies registered for an entity.
func (s *currencyService) ListCurrencies(ctx context.Context, entityID string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate records a rate from a currency to the entity's
// functional currency, valid from a given date onwards.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, entityID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, entityID, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: currency %s is not registered for entity", apperrors.ErrValidation, req.CurrencyCode)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, req.Rate.String())
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		EntityID:       entityID,
		CurrencyCode:   req.CurrencyCode,
		Rate:           *req.Rate,
		ValidFrom:      req.ValidFrom,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("currency_code", req.CurrencyCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	logger.Info("Exchange rate created",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("currency_code", rate.CurrencyCode),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

// GetRateForDate retrieves the applicable rate for a currency/date pair.
func (s *exchangeRateService) GetRateForDate(ctx context.Context, entityID string, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRateForDate(ctx, entityID, currencyCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate for %s as of %s: %w", currencyCode, asOf.Format("2006-01-02"), err)
	}
	return rate, nil
}
