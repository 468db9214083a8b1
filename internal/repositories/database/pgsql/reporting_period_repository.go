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

type PgxReportingPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingPeriodRepository creates a new repository for reporting period data.
func newPgxReportingPeriodRepository(pool *pgxpool.Pool) portsrepo.ReportingPeriodRepositoryFacade {
	return &PgxReportingPeriodRepository{pool: pool}
}

var _ portsrepo.ReportingPeriodRepositoryFacade = (*PgxReportingPeriodRepository)(nil)

// SaveReportingPeriod inserts a new reporting period. A unique constraint on
// (entity_id, calendar_year) guarantees one period per year.
func (r *PgxReportingPeriodRepository) SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error {
	m := mapping.ToModelReportingPeriod(period)

	query := `
		INSERT INTO reporting_periods (reporting_period_id, entity_id, calendar_year, period_start, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ReportingPeriodID,
		m.EntityID,
		m.CalendarYear,
		m.PeriodStart,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reporting period for year %d already exists", apperrors.ErrDuplicate, m.CalendarYear)
		}
		return fmt.Errorf("failed to save reporting period %s: %w", m.ReportingPeriodID, err)
	}
	return nil
}

// FindReportingPeriodByID retrieves a specific reporting period.
func (r *PgxReportingPeriodRepository) FindReportingPeriodByID(ctx context.Context, reportingPeriodID string) (*domain.ReportingPeriod, error) {
	query := `
		SELECT reporting_period_id, entity_id, calendar_year, period_start, status, created_at, created_by, last_updated_at, last_updated_by
		FROM reporting_periods
		WHERE reporting_period_id = $1;
	`
	return r.scanOne(ctx, query, reportingPeriodID)
}

// FindReportingPeriodByYear retrieves the entity's period for a calendar year.
func (r *PgxReportingPeriodRepository) FindReportingPeriodByYear(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error) {
	query := `
		SELECT reporting_period_id, entity_id, calendar_year, period_start, status, created_at, created_by, last_updated_at, last_updated_by
		FROM reporting_periods
		WHERE entity_id = $1 AND calendar_year = $2;
	`
	return r.scanOne(ctx, query, entityID, calendarYear)
}

func (r *PgxReportingPeriodRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.ReportingPeriod, error) {
	var m models.ReportingPeriod
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&m.ReportingPeriodID,
		&m.EntityID,
		&m.CalendarYear,
		&m.PeriodStart,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reporting period: %w", err)
	}

	d := mapping.ToDomainReportingPeriod(m)
	return &d, nil
}
