package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	"github.com/finbooks/ifrs_backend/internal/middleware"
	"github.com/finbooks/ifrs_backend/internal/models"
	"github.com/finbooks/ifrs_backend/internal/utils/mapping"
)

type PgxAssignmentRepository struct {
	BaseRepository
}

// newPgxAssignmentRepository creates a new repository for assignment data.
func newPgxAssignmentRepository(pool *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `assignment_id, entity_id, source_kind, source_id, cleared_by_transaction_id, amount, currency_code, assigned_at, created_at, created_by, last_updated_at, last_updated_by`

func scanAssignment(row pgx.Row) (models.Assignment, error) {
	var m models.Assignment
	err := row.Scan(
		&m.AssignmentID,
		&m.EntityID,
		&m.SourceKind,
		&m.SourceID,
		&m.ClearedByTransactionID,
		&m.Amount,
		&m.CurrencyCode,
		&m.AssignedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateAssignment persists an assignment after an atomic capacity check.
// Within one database transaction the source row and the clearing
// transaction row are locked, both assigned totals are recomputed from the
// existing assignment rows, and the insert is refused with
// apperrors.ErrOverAssignment if the new amount would exceed either side's
// remaining capacity. Two concurrent assignments against the same source
// therefore serialize on the row lock; the second sees the first's row.
func (r *PgxAssignmentRepository) CreateAssignment(ctx context.Context, assignment domain.Assignment) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	m := mapping.ToModelAssignment(assignment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback assignment", slog.String("error", rbErr.Error()))
		}
	}()

	sourceAmount, err := lockClearableAmount(ctx, tx, assignment.Source)
	if err != nil {
		return err
	}
	clearingAmount, err := lockClearableAmount(ctx, tx, domain.ClearableRef{Kind: domain.ClearableTransaction, ID: assignment.ClearedByTransactionID})
	if err != nil {
		return err
	}

	var assignedToSource decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM assignments
		WHERE source_kind = $1 AND source_id = $2;
	`, m.SourceKind, m.SourceID).Scan(&assignedToSource)
	if err != nil {
		return fmt.Errorf("failed to sum assignments for source %s: %w", m.SourceID, err)
	}

	var absorbedByClearing decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM assignments
		WHERE cleared_by_transaction_id = $1;
	`, m.ClearedByTransactionID).Scan(&absorbedByClearing)
	if err != nil {
		return fmt.Errorf("failed to sum assignments cleared by %s: %w", m.ClearedByTransactionID, err)
	}

	if assignedToSource.Add(m.Amount).GreaterThan(sourceAmount) {
		return fmt.Errorf("%w: source %s has %s unassigned, requested %s",
			apperrors.ErrOverAssignment, m.SourceID, sourceAmount.Sub(assignedToSource).String(), m.Amount.String())
	}
	if absorbedByClearing.Add(m.Amount).GreaterThan(clearingAmount) {
		return fmt.Errorf("%w: clearing transaction %s has %s unassigned, requested %s",
			apperrors.ErrOverAssignment, m.ClearedByTransactionID, clearingAmount.Sub(absorbedByClearing).String(), m.Amount.String())
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO assignments (assignment_id, entity_id, source_kind, source_id, cleared_by_transaction_id, amount, currency_code, assigned_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.AssignmentID,
		m.EntityID,
		m.SourceKind,
		m.SourceID,
		m.ClearedByTransactionID,
		m.Amount,
		m.CurrencyCode,
		m.AssignedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: assignment with ID %s already exists", apperrors.ErrDuplicate, m.AssignmentID)
		}
		return fmt.Errorf("failed to save assignment %s: %w", m.AssignmentID, err)
	}

	return r.Commit(ctx, tx)
}

// lockClearableAmount locks the row behind a clearable reference and returns
// its amount. Recycled rows count as not found.
func lockClearableAmount(ctx context.Context, tx pgx.Tx, ref domain.ClearableRef) (decimal.Decimal, error) {
	var query string
	switch ref.Kind {
	case domain.ClearableBalance:
		query = `SELECT amount FROM balances WHERE balance_id = $1 AND deleted_at IS NULL FOR UPDATE;`
	case domain.ClearableTransaction:
		query = `SELECT amount FROM transactions WHERE transaction_id = $1 AND deleted_at IS NULL FOR UPDATE;`
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown clearable kind %q", apperrors.ErrValidation, ref.Kind)
	}

	var amount decimal.Decimal
	if err := tx.QueryRow(ctx, query, ref.ID).Scan(&amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("clearable %s %s: %w", ref.Kind, ref.ID, apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to lock clearable %s %s: %w", ref.Kind, ref.ID, err)
	}
	return amount, nil
}

// ListAssignmentsBySource retrieves the assignments recorded against a
// clearable source, oldest first.
func (r *PgxAssignmentRepository) ListAssignmentsBySource(ctx context.Context, source domain.ClearableRef) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE source_kind = $1 AND source_id = $2
		ORDER BY assigned_at, created_at;`

	return r.list(ctx, query, string(source.Kind), source.ID)
}

// ListAssignmentsByClearedBy retrieves the assignments cleared by a
// transaction, oldest first.
func (r *PgxAssignmentRepository) ListAssignmentsByClearedBy(ctx context.Context, transactionID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE cleared_by_transaction_id = $1
		ORDER BY assigned_at, created_at;`

	return r.list(ctx, query, transactionID)
}

func (r *PgxAssignmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Assignment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	ms := []models.Assignment{}
	for rows.Next() {
		m, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return mapping.ToDomainAssignmentSlice(ms), nil
}

// SumAssignedToSource returns the total amount already assigned against a
// clearable source.
func (r *PgxAssignmentRepository) SumAssignedToSource(ctx context.Context, source domain.ClearableRef) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM assignments
		WHERE source_kind = $1 AND source_id = $2;
	`, string(source.Kind), source.ID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum assignments for source %s: %w", source.ID, err)
	}
	return total, nil
}

// SumAssignedToClearedBy returns the total amount a clearing transaction has
// already absorbed.
func (r *PgxAssignmentRepository) SumAssignedToClearedBy(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM assignments
		WHERE cleared_by_transaction_id = $1;
	`, transactionID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum assignments cleared by %s: %w", transactionID, err)
	}
	return total, nil
}
