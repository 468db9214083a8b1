package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// --- Mock EntityRepository ---
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, entityID string, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, entityID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, entityID string) ([]domain.Currency, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, exchangeRateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, exchangeRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateForDate(ctx context.Context, entityID string, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, entityID, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock ReportingPeriodRepository ---
type MockReportingPeriodRepository struct {
	mock.Mock
}

func (m *MockReportingPeriodRepository) FindReportingPeriodByID(ctx context.Context, reportingPeriodID string) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, reportingPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

func (m *MockReportingPeriodRepository) FindReportingPeriodByYear(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, entityID, calendarYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

func (m *MockReportingPeriodRepository) SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, entityID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) RecycleTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) FindBalanceByID(ctx context.Context, balanceID string) (*domain.Balance, error) {
	args := m.Called(ctx, balanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) FindBalanceByTransactionNo(ctx context.Context, entityID string, transactionNo string) (*domain.Balance, error) {
	args := m.Called(ctx, entityID, transactionNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) ListBalancesByPeriod(ctx context.Context, entityID string, reportingPeriodID string) ([]domain.Balance, error) {
	args := m.Called(ctx, entityID, reportingPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) SaveBalance(ctx context.Context, balance domain.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockBalanceRepository) RecycleBalance(ctx context.Context, balanceID string, userID string, now time.Time) error {
	args := m.Called(ctx, balanceID, userID, now)
	return args.Error(0)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ListAssignmentsBySource(ctx context.Context, source domain.ClearableRef) ([]domain.Assignment, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsByClearedBy(ctx context.Context, transactionID string) ([]domain.Assignment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) SumAssignedToSource(ctx context.Context, source domain.ClearableRef) (decimal.Decimal, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAssignmentRepository) SumAssignedToClearedBy(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAssignmentRepository) CreateAssignment(ctx context.Context, assignment domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

// --- Mock TenantContext ---
type MockTenantContext struct {
	mock.Mock
}

func (m *MockTenantContext) CurrentReportingPeriod(ctx context.Context, entityID string, asOf time.Time) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, entityID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

func (m *MockTenantContext) DefaultCurrency(ctx context.Context, entityID string) (*domain.Currency, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockTenantContext) DefaultExchangeRate(ctx context.Context, entityID string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, entityID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
