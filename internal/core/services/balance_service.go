package services

import (
	"context"
	"errors"
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

var (
	ErrNegativeAmount             = errors.New("balance amount must not be negative")
	ErrInvalidBalanceTransaction  = errors.New("balance transaction type must be a clearable type")
	ErrInvalidBalanceType         = errors.New("balance type must be debit or credit")
	ErrInvalidAccountClassBalance = errors.New("income statement accounts cannot carry opening balances")
	ErrInvalidBalanceDate         = errors.New("balance date precedes the reporting period start")
)

// balanceService constructs, validates and persists opening balances.
type balanceService struct {
	balanceRepo portsrepo.BalanceRepositoryFacade
	accountRepo portsrepo.AccountReader
	periodRepo  portsrepo.ReportingPeriodReader
	tenantCtx   portssvc.TenantContextSvc
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	balanceRepo portsrepo.BalanceRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	periodRepo portsrepo.ReportingPeriodReader,
	tenantCtx portssvc.TenantContextSvc,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		balanceRepo: balanceRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
		tenantCtx:   tenantCtx,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// NewBalance fills any attribute absent from the request with the entity's
// defaults. The returned balance is not yet validated or persisted.
func (s *balanceService) NewBalance(ctx context.Context, entityID string, req dto.CreateBalanceRequest, creatorUserID string) (*domain.Balance, error) {
	now := time.Now().UTC()

	balance := &domain.Balance{
		BalanceID: uuid.NewString(),
		EntityID:  entityID,
		AccountID: req.AccountID,
		Reference: req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.Amount != nil {
		balance.Amount = *req.Amount
	}

	balance.TransactionDate = now
	if req.TransactionDate != nil {
		balance.TransactionDate = *req.TransactionDate
	}

	balance.TransactionType = domain.JournalEntry
	if req.TransactionType != nil {
		balance.TransactionType = domain.TransactionType(*req.TransactionType)
	}

	balance.BalanceType = domain.DebitBalance
	if req.BalanceType != nil {
		balance.BalanceType = domain.BalanceType(*req.BalanceType)
	}

	if req.CurrencyCode != nil {
		balance.CurrencyCode = *req.CurrencyCode
	} else {
		currency, err := s.tenantCtx.DefaultCurrency(ctx, entityID)
		if err != nil {
			return nil, fmt.Errorf("failed to default currency: %w", err)
		}
		balance.CurrencyCode = currency.CurrencyCode
	}

	var period *domain.ReportingPeriod
	if req.ReportingPeriodID != nil {
		var err error
		period, err = s.periodRepo.FindReportingPeriodByID(ctx, *req.ReportingPeriodID)
		if err != nil {
			return nil, fmt.Errorf("failed to find reporting period %s: %w", *req.ReportingPeriodID, err)
		}
	} else {
		var err error
		period, err = s.tenantCtx.CurrentReportingPeriod(ctx, entityID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to default reporting period: %w", err)
		}
	}
	balance.ReportingPeriodID = period.ReportingPeriodID

	if req.ExchangeRateID != nil {
		balance.ExchangeRateID = *req.ExchangeRateID
	} else {
		rate, err := s.tenantCtx.DefaultExchangeRate(ctx, entityID, balance.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to default exchange rate: %w", err)
		}
		balance.ExchangeRateID = rate.ExchangeRateID
	}

	if req.TransactionNo != nil {
		balance.TransactionNo = *req.TransactionNo
	} else {
		balance.TransactionNo = domain.DeriveTransactionNo(balance.AccountID, balance.CurrencyCode, period.CalendarYear)
	}

	return balance, nil
}

// ValidateAndSave runs the invariant checks in a fixed order, failing fast
// on the cheapest local checks before the relational ones, and persists the
// balance only if every check passes:
//  1. amount is non-negative
//  2. transaction type is clearable
//  3. balance type is debit or credit
//  4. the account is not an income statement account
//  5. the reporting period start does not postdate the balance date
func (s *balanceService) ValidateAndSave(ctx context.Context, balance *domain.Balance) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if balance.Amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativeAmount, balance.Amount.String())
	}

	if !balance.TransactionType.IsClearable() {
		return fmt.Errorf("%w: got %s, allowed %v", ErrInvalidBalanceTransaction, balance.TransactionType, domain.ClearableTransactionTypes())
	}

	if balance.BalanceType != domain.DebitBalance && balance.BalanceType != domain.CreditBalance {
		return fmt.Errorf("%w: got %s, allowed %v", ErrInvalidBalanceType, balance.BalanceType, domain.BalanceTypes())
	}

	account, err := s.accountRepo.FindAccountByID(ctx, balance.AccountID)
	if err != nil {
		return fmt.Errorf("failed to find account %s: %w", balance.AccountID, err)
	}
	if account.EntityID != balance.EntityID {
		// Obscure existence of accounts in other entities
		return fmt.Errorf("account %s: %w", balance.AccountID, apperrors.ErrNotFound)
	}
	if account.AccountType.IsIncomeStatement() {
		return fmt.Errorf("%w: account %s is %s", ErrInvalidAccountClassBalance, account.AccountID, account.AccountType)
	}

	period, err := s.periodRepo.FindReportingPeriodByID(ctx, balance.ReportingPeriodID)
	if err != nil {
		return fmt.Errorf("failed to find reporting period %s: %w", balance.ReportingPeriodID, err)
	}
	if period.PeriodStart.After(balance.TransactionDate) {
		return fmt.Errorf("%w: period starts %s, balance dated %s", ErrInvalidBalanceDate,
			period.PeriodStart.Format("2006-01-02"), balance.TransactionDate.Format("2006-01-02"))
	}

	if err := s.balanceRepo.SaveBalance(ctx, *balance); err != nil {
		logger.Error("Failed to save balance", slog.String("balance_id", balance.BalanceID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to save balance: %w", err)
	}

	logger.Info("Balance saved", slog.String("balance_id", balance.BalanceID), slog.String("transaction_no", balance.TransactionNo))
	return nil
}

// CreateBalance is NewBalance followed by ValidateAndSave.
func (s *balanceService) CreateBalance(ctx context.Context, entityID string, req dto.CreateBalanceRequest, creatorUserID string) (*domain.Balance, error) {
	balance, err := s.NewBalance(ctx, entityID, req, creatorUserID)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateAndSave(ctx, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// GetBalanceByID retrieves a specific balance within an entity.
func (s *balanceService) GetBalanceByID(ctx context.Context, entityID string, balanceID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.FindBalanceByID(ctx, balanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find balance %s: %w", balanceID, err)
	}
	if balance.EntityID != entityID {
		return nil, fmt.Errorf("balance %s: %w", balanceID, apperrors.ErrNotFound)
	}
	return balance, nil
}

// GetBalanceByTransactionNo retrieves a balance by its synthetic transaction
// number. The repository query is already entity-scoped, the number being
// unique per entity only.
func (s *balanceService) GetBalanceByTransactionNo(ctx context.Context, entityID string, transactionNo string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.FindBalanceByTransactionNo(ctx, entityID, transactionNo)
	if err != nil {
		return nil, fmt.Errorf("failed to find balance with transaction no %s: %w", transactionNo, err)
	}
	return balance, nil
}

// ListBalancesByPeriod retrieves the balances of a reporting period.
func (s *balanceService) ListBalancesByPeriod(ctx context.Context, entityID string, reportingPeriodID string) ([]domain.Balance, error) {
	balances, err := s.balanceRepo.ListBalancesByPeriod(ctx, entityID, reportingPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	if balances == nil {
		return []domain.Balance{}, nil
	}
	return balances, nil
}

// RecycleBalance soft-deletes a balance. The repository removes any
// assignments whose source references the balance in the same database
// transaction, so the counterparty's unassigned amount is restored.
func (s *balanceService) RecycleBalance(ctx context.Context, entityID string, balanceID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetBalanceByID(ctx, entityID, balanceID); err != nil {
		return err
	}

	if err := s.balanceRepo.RecycleBalance(ctx, balanceID, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to recycle balance", slog.String("balance_id", balanceID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to recycle balance %s: %w", balanceID, err)
	}

	logger.Info("Balance recycled", slog.String("balance_id", balanceID))
	return nil
}
