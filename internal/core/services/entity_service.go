package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

var (
	ErrNoRateFound  = errors.New("no applicable exchange rate found")
	ErrNoOpenPeriod = errors.New("no reporting period exists for the requested year")
)

// entityService resolves tenant context: the current reporting period,
// functional currency and default exchange rate of an entity.
type entityService struct {
	entityRepo   portsrepo.EntityRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	periodRepo   portsrepo.ReportingPeriodRepositoryFacade
}

// NewEntityService creates a new EntityService.
func NewEntityService(
	entityRepo portsrepo.EntityRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	periodRepo portsrepo.ReportingPeriodRepositoryFacade,
) portssvc.EntitySvcFacade {
	return &entityService{
		entityRepo:   entityRepo,
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		periodRepo:   periodRepo,
	}
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

// GetEntityByID retrieves a specific entity.
func (s *entityService) GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entity %s: %w", entityID, err)
	}
	return entity, nil
}

// CreateEntity bootstraps a tenant: the entity record, its functional
// currency, its first reporting period and a unit exchange rate for the
// functional currency so that default rate resolution succeeds immediately.
func (s *entityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID string) (*domain.Entity, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	entity := domain.Entity{
		EntityID:               uuid.NewString(),
		Name:                   req.Name,
		FunctionalCurrencyCode: req.FunctionalCurrencyCode,
		IsActive:               true,
		AuditFields:            audit,
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		logger.Error("Failed to save entity", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entity: %w", err)
	}

	currency := domain.Currency{
		CurrencyCode: req.FunctionalCurrencyCode,
		EntityID:     entity.EntityID,
		Symbol:       req.CurrencySymbol,
		Name:         req.CurrencyName,
		AuditFields:  audit,
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save functional currency", slog.String("entity_id", entity.EntityID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save functional currency: %w", err)
	}

	period := domain.ReportingPeriod{
		ReportingPeriodID: uuid.NewString(),
		EntityID:          entity.EntityID,
		CalendarYear:      req.CalendarYear,
		PeriodStart:       req.PeriodStart,
		Status:            domain.PeriodOpen,
		AuditFields:       audit,
	}
	if err := s.periodRepo.SaveReportingPeriod(ctx, period); err != nil {
		logger.Error("Failed to save reporting period", slog.String("entity_id", entity.EntityID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save reporting period: %w", err)
	}

	// The functional currency converts to itself at par.
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		EntityID:       entity.EntityID,
		CurrencyCode:   req.FunctionalCurrencyCode,
		Rate:           decimal.NewFromInt(1),
		ValidFrom:      req.PeriodStart,
		AuditFields:    audit,
	}
	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save default exchange rate", slog.String("entity_id", entity.EntityID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save default exchange rate: %w", err)
	}

	logger.Info("Entity created", slog.String("entity_id", entity.EntityID), slog.String("currency", entity.FunctionalCurrencyCode), slog.Int("calendar_year", period.CalendarYear))
	return &entity, nil
}

// CurrentReportingPeriod resolves the entity's period for the calendar year of asOf.
func (s *entityService) CurrentReportingPeriod(ctx context.Context, entityID string, asOf time.Time) (*domain.ReportingPeriod, error) {
	period, err := s.periodRepo.FindReportingPeriodByYear(ctx, entityID, asOf.Year())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity %s, year %d", ErrNoOpenPeriod, entityID, asOf.Year())
		}
		return nil, fmt.Errorf("failed to resolve current reporting period: %w", err)
	}
	return period, nil
}

// DefaultCurrency resolves the entity's functional currency.
func (s *entityService) DefaultCurrency(ctx context.Context, entityID string) (*domain.Currency, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entity %s: %w", entityID, err)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, entityID, entity.FunctionalCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve functional currency %s: %w", entity.FunctionalCurrencyCode, err)
	}
	return currency, nil
}

// DefaultExchangeRate resolves the applicable rate for the entity's
// functional currency as of a date.
func (s *entityService) DefaultExchangeRate(ctx context.Context, entityID string, asOf time.Time) (*domain.ExchangeRate, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entity %s: %w", entityID, err)
	}

	rate, err := s.rateRepo.FindRateForDate(ctx, entityID, entity.FunctionalCurrencyCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s as of %s", ErrNoRateFound, entity.FunctionalCurrencyCode, asOf.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to resolve default exchange rate: %w", err)
	}
	return rate, nil
}
