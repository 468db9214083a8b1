package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

var (
	ErrNotSameCurrency = errors.New("source and clearing transaction must share a currency")
)

// clearingService matches clearable sources (balances and transactions)
// against clearing transactions, producing assignment records. The capacity
// check itself happens atomically in the assignment repository; this service
// performs the cheap local checks and the FIFO orchestration.
type clearingService struct {
	assignmentRepo  portsrepo.AssignmentRepositoryFacade
	balanceRepo     portsrepo.BalanceReader
	transactionRepo portsrepo.TransactionReader
}

// NewClearingService creates a new ClearingService.
func NewClearingService(
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	balanceRepo portsrepo.BalanceReader,
	transactionRepo portsrepo.TransactionReader,
) portssvc.ClearingSvcFacade {
	return &clearingService{
		assignmentRepo:  assignmentRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.ClearingSvcFacade = (*clearingService)(nil)

// resolveClearable loads the concrete record behind a tagged reference.
func (s *clearingService) resolveClearable(ctx context.Context, ref domain.ClearableRef) (domain.Clearable, error) {
	switch ref.Kind {
	case domain.ClearableBalance:
		balance, err := s.balanceRepo.FindBalanceByID(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve balance %s: %w", ref.ID, err)
		}
		return *balance, nil
	case domain.ClearableTransaction:
		txn, err := s.transactionRepo.FindTransactionByID(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve transaction %s: %w", ref.ID, err)
		}
		return *txn, nil
	default:
		return nil, fmt.Errorf("%w: unknown clearable kind %q", apperrors.ErrValidation, ref.Kind)
	}
}

// Assign matches an amount of a clearable source against a clearing
// transaction. The repository refuses the insert when the amount exceeds
// either side's remaining capacity, so concurrent assignments against the
// same clearable cannot jointly over-assign.
func (s *clearingService) Assign(ctx context.Context, entityID string, source domain.ClearableRef, clearingTransactionID string, amount decimal.Decimal, userID string) (*domain.Assignment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: assignment amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}

	src, err := s.resolveClearable(ctx, source)
	if err != nil {
		return nil, err
	}
	if src.ClearableEntityID() != entityID {
		return nil, fmt.Errorf("clearable %s %s: %w", source.Kind, source.ID, apperrors.ErrNotFound)
	}

	clearing, err := s.transactionRepo.FindTransactionByID(ctx, clearingTransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clearing transaction %s: %w", clearingTransactionID, err)
	}
	if clearing.EntityID != entityID {
		return nil, fmt.Errorf("clearing transaction %s: %w", clearingTransactionID, apperrors.ErrNotFound)
	}

	if src.ClearableCurrency() != clearing.CurrencyCode {
		return nil, fmt.Errorf("%w: source is %s, clearing transaction is %s", ErrNotSameCurrency, src.ClearableCurrency(), clearing.CurrencyCode)
	}

	// A source cannot clear against itself.
	if source.Kind == domain.ClearableTransaction && source.ID == clearingTransactionID {
		return nil, fmt.Errorf("%w: a transaction cannot clear itself", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	assignment := domain.Assignment{
		AssignmentID:           uuid.NewString(),
		EntityID:               entityID,
		Source:                 source,
		ClearedByTransactionID: clearingTransactionID,
		Amount:                 amount,
		CurrencyCode:           clearing.CurrencyCode,
		AssignedAt:             now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.assignmentRepo.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, apperrors.ErrOverAssignment) {
			logger.Warn("Assignment rejected: over-assignment",
				slog.String("source_kind", string(source.Kind)),
				slog.String("source_id", source.ID),
				slog.String("clearing_transaction_id", clearingTransactionID),
				slog.String("amount", amount.String()))
			return nil, err
		}
		logger.Error("Failed to create assignment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	logger.Info("Assignment created",
		slog.String("assignment_id", assignment.AssignmentID),
		slog.String("source_id", source.ID),
		slog.String("clearing_transaction_id", clearingTransactionID),
		slog.String("amount", amount.String()))
	return &assignment, nil
}

// UnassignedAmount returns the remaining capacity of a clearable, always
// recomputed from the assignment rows rather than a running counter.
func (s *clearingService) UnassignedAmount(ctx context.Context, entityID string, source domain.ClearableRef) (decimal.Decimal, error) {
	src, err := s.resolveClearable(ctx, source)
	if err != nil {
		return decimal.Zero, err
	}
	if src.ClearableEntityID() != entityID {
		// Obscure existence of clearables in other entities
		return decimal.Zero, fmt.Errorf("clearable %s %s: %w", source.Kind, source.ID, apperrors.ErrNotFound)
	}

	assigned, err := s.assignmentRepo.SumAssignedToSource(ctx, source)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum assignments for %s %s: %w", source.Kind, source.ID, err)
	}

	return src.ClearableAmount().Sub(assigned), nil
}

// AutoClear matches outstanding sources against clearing transactions in
// FIFO order: sources oldest first, and within a source, clearing
// transactions oldest first, stopping a clearing transaction once its own
// amount is exhausted. Sources in a different currency than a clearing
// transaction are simply not matched against it.
func (s *clearingService) AutoClear(ctx context.Context, entityID string, sources []domain.ClearableRef, clearingTransactionIDs []string, userID string) ([]domain.Assignment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resolved := make([]domain.Clearable, 0, len(sources))
	for _, ref := range sources {
		src, err := s.resolveClearable(ctx, ref)
		if err != nil {
			return nil, err
		}
		if src.ClearableEntityID() != entityID {
			return nil, fmt.Errorf("clearable %s %s: %w", ref.Kind, ref.ID, apperrors.ErrNotFound)
		}
		resolved = append(resolved, src)
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].ClearableDate().Before(resolved[j].ClearableDate())
	})

	type clearingSlot struct {
		txn       *domain.Transaction
		remaining decimal.Decimal
	}
	slots := make([]clearingSlot, 0, len(clearingTransactionIDs))
	for _, id := range clearingTransactionIDs {
		txn, err := s.transactionRepo.FindTransactionByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve clearing transaction %s: %w", id, err)
		}
		if txn.EntityID != entityID {
			return nil, fmt.Errorf("clearing transaction %s: %w", id, apperrors.ErrNotFound)
		}
		absorbed, err := s.assignmentRepo.SumAssignedToClearedBy(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to sum assignments cleared by %s: %w", id, err)
		}
		slots = append(slots, clearingSlot{txn: txn, remaining: txn.Amount.Sub(absorbed)})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].txn.TransactionDate.Before(slots[j].txn.TransactionDate)
	})

	var created []domain.Assignment
	for _, src := range resolved {
		assigned, err := s.assignmentRepo.SumAssignedToSource(ctx, src.ClearableRef())
		if err != nil {
			return created, fmt.Errorf("failed to sum assignments for %s: %w", src.ClearableRef().ID, err)
		}
		outstanding := src.ClearableAmount().Sub(assigned)

		for i := range slots {
			if !outstanding.IsPositive() {
				break
			}
			if !slots[i].remaining.IsPositive() {
				continue
			}
			if slots[i].txn.CurrencyCode != src.ClearableCurrency() {
				continue
			}

			amount := decimal.Min(outstanding, slots[i].remaining)
			assignment, err := s.Assign(ctx, entityID, src.ClearableRef(), slots[i].txn.TransactionID, amount, userID)
			if err != nil {
				return created, err
			}

			created = append(created, *assignment)
			outstanding = outstanding.Sub(amount)
			slots[i].remaining = slots[i].remaining.Sub(amount)
		}
	}

	logger.Info("Auto-clear completed", slog.Int("sources", len(sources)), slog.Int("assignments", len(created)))
	return created, nil
}

// ListAssignmentsBySource retrieves the assignments recorded against a source.
func (s *clearingService) ListAssignmentsBySource(ctx context.Context, entityID string, source domain.ClearableRef) ([]domain.Assignment, error) {
	src, err := s.resolveClearable(ctx, source)
	if err != nil {
		return nil, err
	}
	if src.ClearableEntityID() != entityID {
		return nil, fmt.Errorf("clearable %s %s: %w", source.Kind, source.ID, apperrors.ErrNotFound)
	}

	assignments, err := s.assignmentRepo.ListAssignmentsBySource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for %s %s: %w", source.Kind, source.ID, err)
	}
	if assignments == nil {
		return []domain.Assignment{}, nil
	}
	return assignments, nil
}
