package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	"github.com/finbooks/ifrs_backend/internal/middleware"
	"github.com/finbooks/ifrs_backend/internal/models"
	"github.com/finbooks/ifrs_backend/internal/utils/mapping"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for opening balance data.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `balance_id, entity_id, account_id, currency_code, exchange_rate_id, reporting_period_id, transaction_no, reference, balance_type, transaction_type, transaction_date, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanBalance(row pgx.Row) (models.Balance, error) {
	var m models.Balance
	err := row.Scan(
		&m.BalanceID,
		&m.EntityID,
		&m.AccountID,
		&m.CurrencyCode,
		&m.ExchangeRateID,
		&m.ReportingPeriodID,
		&m.TransactionNo,
		&m.Reference,
		&m.BalanceType,
		&m.TransactionType,
		&m.TransactionDate,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBalance inserts a new balance. The unique (entity_id, transaction_no)
// constraint maps to apperrors.ErrDuplicate.
func (r *PgxBalanceRepository) SaveBalance(ctx context.Context, balance domain.Balance) error {
	m := mapping.ToModelBalance(balance)

	query := `
		INSERT INTO balances (balance_id, entity_id, account_id, currency_code, exchange_rate_id, reporting_period_id, transaction_no, reference, balance_type, transaction_type, transaction_date, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BalanceID,
		m.EntityID,
		m.AccountID,
		m.CurrencyCode,
		m.ExchangeRateID,
		m.ReportingPeriodID,
		m.TransactionNo,
		m.Reference,
		m.BalanceType,
		m.TransactionType,
		m.TransactionDate,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: balance with transaction no %s already exists", apperrors.ErrDuplicate, m.TransactionNo)
		}
		return fmt.Errorf("failed to save balance %s: %w", m.BalanceID, err)
	}
	return nil
}

// FindBalanceByID retrieves a balance by ID, excluding recycled rows.
func (r *PgxBalanceRepository) FindBalanceByID(ctx context.Context, balanceID string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE balance_id = $1 AND deleted_at IS NULL;`

	m, err := scanBalance(r.Pool.QueryRow(ctx, query, balanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance by ID %s: %w", balanceID, err)
	}

	d := mapping.ToDomainBalance(m)
	return &d, nil
}

// FindBalanceByTransactionNo retrieves a balance by its synthetic key.
func (r *PgxBalanceRepository) FindBalanceByTransactionNo(ctx context.Context, entityID string, transactionNo string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE entity_id = $1 AND transaction_no = $2 AND deleted_at IS NULL;`

	m, err := scanBalance(r.Pool.QueryRow(ctx, query, entityID, transactionNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance by transaction no %s: %w", transactionNo, err)
	}

	d := mapping.ToDomainBalance(m)
	return &d, nil
}

// ListBalancesByPeriod retrieves the balances of a reporting period,
// excluding recycled rows.
func (r *PgxBalanceRepository) ListBalancesByPeriod(ctx context.Context, entityID string, reportingPeriodID string) ([]domain.Balance, error) {
	query := `SELECT ` + balanceColumns + `
		FROM balances
		WHERE entity_id = $1 AND reporting_period_id = $2 AND deleted_at IS NULL
		ORDER BY transaction_date, created_at;`

	rows, err := r.Pool.Query(ctx, query, entityID, reportingPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances for period %s: %w", reportingPeriodID, err)
	}
	defer rows.Close()

	ms := []models.Balance{}
	for rows.Next() {
		m, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}

	return mapping.ToDomainBalanceSlice(ms), nil
}

// RecycleBalance soft-deletes a balance and removes every assignment whose
// source references it, in one database transaction.
func (r *PgxBalanceRepository) RecycleBalance(ctx context.Context, balanceID string, userID string, now time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback recycle balance", slog.String("error", rbErr.Error()))
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE balances
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE balance_id = $1 AND deleted_at IS NULL;
	`, balanceID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to recycle balance %s: %w", balanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM assignments
		WHERE source_kind = $1 AND source_id = $2;
	`, string(domain.ClearableBalance), balanceID)
	if err != nil {
		return fmt.Errorf("failed to remove assignments for balance %s: %w", balanceID, err)
	}

	return r.Commit(ctx, tx)
}
