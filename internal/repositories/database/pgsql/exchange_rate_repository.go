package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	"github.com/finbooks/ifrs_backend/internal/models"
	"github.com/finbooks/ifrs_backend/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{pool: pool}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new exchange rate record.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, entity_id, currency_code, rate, valid_from, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.EntityID,
		m.CurrencyCode,
		m.Rate,
		m.ValidFrom,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: exchange rate %s already exists", apperrors.ErrDuplicate, m.ExchangeRateID)
		}
		return fmt.Errorf("failed to save exchange rate %s: %w", m.ExchangeRateID, err)
	}
	return nil
}

// FindExchangeRateByID retrieves a specific exchange rate record.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, entity_id, currency_code, rate, valid_from, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE exchange_rate_id = $1;
	`
	var m models.ExchangeRate
	err := r.pool.QueryRow(ctx, query, exchangeRateID).Scan(
		&m.ExchangeRateID,
		&m.EntityID,
		&m.CurrencyCode,
		&m.Rate,
		&m.ValidFrom,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate by ID %s: %w", exchangeRateID, err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// FindRateForDate retrieves the most recent rate for a currency whose
// valid_from date does not exceed asOf.
func (r *PgxExchangeRateRepository) FindRateForDate(ctx context.Context, entityID string, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, entity_id, currency_code, rate, valid_from, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE entity_id = $1 AND currency_code = $2 AND valid_from <= $3
		ORDER BY valid_from DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.pool.QueryRow(ctx, query, entityID, currencyCode, asOf).Scan(
		&m.ExchangeRateID,
		&m.EntityID,
		&m.CurrencyCode,
		&m.Rate,
		&m.ValidFrom,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate for %s as of %s: %w", currencyCode, asOf.Format("2006-01-02"), err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}
