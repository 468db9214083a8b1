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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)

	query := `
		INSERT INTO transactions (transaction_id, entity_id, account_id, transaction_no, reference, transaction_type, transaction_date, amount, currency_code, narration, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.EntityID,
		m.AccountID,
		m.TransactionNo,
		m.Reference,
		m.TransactionType,
		m.TransactionDate,
		m.Amount,
		m.CurrencyCode,
		m.Narration,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by ID, excluding recycled rows.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, entity_id, account_id, transaction_no, reference, transaction_type, transaction_date, amount, currency_code, narration, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.EntityID,
		&m.AccountID,
		&m.TransactionNo,
		&m.Reference,
		&m.TransactionType,
		&m.TransactionDate,
		&m.Amount,
		&m.CurrencyCode,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactionsByAccount retrieves a paginated list of an account's
// transactions, oldest first, excluding recycled rows.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transaction_id, entity_id, account_id, transaction_no, reference, transaction_type, transaction_date, amount, currency_code, narration, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY transaction_date, created_at
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.EntityID,
			&m.AccountID,
			&m.TransactionNo,
			&m.Reference,
			&m.TransactionType,
			&m.TransactionDate,
			&m.Amount,
			&m.CurrencyCode,
			&m.Narration,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// RecycleTransaction soft-deletes a transaction and removes every assignment
// that references it, as source or as clearing transaction, in one database
// transaction. Deleting the assignment rows restores the counterparties'
// unassigned amounts, which are always recomputed from the rows.
func (r *PgxTransactionRepository) RecycleTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback recycle transaction", slog.String("error", rbErr.Error()))
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to recycle transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM assignments
		WHERE (source_kind = $1 AND source_id = $2) OR cleared_by_transaction_id = $2;
	`, string(domain.ClearableTransaction), transactionID)
	if err != nil {
		return fmt.Errorf("failed to remove assignments for transaction %s: %w", transactionID, err)
	}

	return r.Commit(ctx, tx)
}
