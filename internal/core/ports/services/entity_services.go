package services

import (
	"context"
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// EntityReaderSvc defines read operations for tenant entities
type EntityReaderSvc interface {
	// GetEntityByID retrieves a specific entity by its unique identifier.
	GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)
}

// EntityWriterSvc defines write operations for tenant entities
type EntityWriterSvc interface {
	// CreateEntity bootstraps a tenant: the entity itself, its functional
	// currency and its first reporting period.
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID string) (*domain.Entity, error)
}

// TenantContextSvc resolves the tenant-scoped defaults used when
// constructing new records for an entity.
type TenantContextSvc interface {
	// CurrentReportingPeriod resolves the entity's reporting period for the
	// calendar year of asOf.
	CurrentReportingPeriod(ctx context.Context, entityID string, asOf time.Time) (*domain.ReportingPeriod, error)

	// DefaultCurrency resolves the entity's functional currency.
	DefaultCurrency(ctx context.Context, entityID string) (*domain.Currency, error)

	// DefaultExchangeRate resolves the applicable rate for the entity's
	// functional currency as of a date. Fails with ErrNoRateFound when no
	// rate record applies.
	DefaultExchangeRate(ctx context.Context, entityID string, asOf time.Time) (*domain.ExchangeRate, error)
}

// EntitySvcFacade combines all entity-related service interfaces
type EntitySvcFacade interface {
	EntityReaderSvc
	EntityWriterSvc
	TenantContextSvc
}
