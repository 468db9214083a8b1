package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	"github.com/finbooks/ifrs_backend/internal/models"
	"github.com/finbooks/ifrs_backend/internal/utils/mapping"
)

type PgxEntityRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntityRepository creates a new repository for tenant entity data.
func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{pool: pool}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

// SaveEntity inserts a new entity.
func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)

	query := `
		INSERT INTO entities (entity_id, name, functional_currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EntityID,
		m.Name,
		m.FunctionalCurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: entity with ID %s already exists", apperrors.ErrDuplicate, m.EntityID)
		}
		return fmt.Errorf("failed to save entity %s: %w", m.EntityID, err)
	}
	return nil
}

// FindEntityByID retrieves an entity by its ID.
func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `
		SELECT entity_id, name, functional_currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM entities
		WHERE entity_id = $1;
	`
	var m models.Entity
	err := r.pool.QueryRow(ctx, query, entityID).Scan(
		&m.EntityID,
		&m.Name,
		&m.FunctionalCurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entity by ID %s: %w", entityID, err)
	}

	d := mapping.ToDomainEntity(m)
	return &d, nil
}
