package repositories

import (
	"context"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// EntityReader defines read operations for tenant entities
type EntityReader interface {
	// FindEntityByID retrieves a specific entity by its unique identifier.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)
}

// EntityWriter defines write operations for tenant entities
type EntityWriter interface {
	// SaveEntity persists a new entity.
	SaveEntity(ctx context.Context, entity domain.Entity) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
