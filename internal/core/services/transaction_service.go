package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// transactionService provides business logic for ledger transactions.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	currencyRepo    portsrepo.CurrencyReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		currencyRepo:    currencyRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction persists a new transaction after verifying the account
// and currency belong to the entity.
func (s *transactionService) CreateTransaction(ctx context.Context, entityID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountID, err)
	}
	if account.EntityID != entityID {
		// Obscure existence of accounts in other entities
		return nil, fmt.Errorf("account %s: %w", req.AccountID, apperrors.ErrNotFound)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, entityID, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: currency %s is not registered for entity", apperrors.ErrValidation, req.CurrencyCode)
	}

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: transaction amount must not be negative, got %s", apperrors.ErrValidation, req.Amount.String())
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		EntityID:        entityID,
		AccountID:       req.AccountID,
		TransactionNo:   req.TransactionNo,
		Reference:       req.Reference,
		TransactionType: domain.TransactionType(req.TransactionType),
		TransactionDate: req.TransactionDate,
		Amount:          *req.Amount,
		CurrencyCode:    req.CurrencyCode,
		Narration:       req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// GetTransactionByID retrieves a specific transaction within an entity.
// Recycled transactions are not returned.
func (s *transactionService) GetTransactionByID(ctx context.Context, entityID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.EntityID != entityID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

// ListTransactionsByAccount retrieves a paginated list of an account's
// transactions, oldest first.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, entityID string, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.EntityID != entityID {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	transactions, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// RecycleTransaction soft-deletes a transaction. The repository removes any
// assignments referencing the transaction, on either side, in the same
// database transaction so the counterparties' unassigned amounts are
// restored.
func (s *transactionService) RecycleTransaction(ctx context.Context, entityID string, transactionID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetTransactionByID(ctx, entityID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.RecycleTransaction(ctx, transactionID, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to recycle transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to recycle transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction recycled", slog.String("transaction_id", transactionID))
	return nil
}
