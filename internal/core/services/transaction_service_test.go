package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/core/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	mockCurrencyRepo    *MockCurrencyRepository
	service             portssvc.TransactionSvcFacade

	entityID string
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, suite.mockAccountRepo, suite.mockCurrencyRepo)
	suite.entityID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) account(accountID string) *domain.Account {
	return &domain.Account{
		AccountID:    accountID,
		EntityID:     suite.entityID,
		Name:         "Bank",
		AccountType:  domain.Bank,
		CurrencyCode: "KES",
	}
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(150)
	req := dto.CreateTransactionRequest{
		AccountID:       accountID,
		TransactionType: string(domain.ClientInvoice),
		TransactionDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:          &amount,
		CurrencyCode:    "KES",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(suite.account(accountID), nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, suite.entityID, "KES").
		Return(&domain.Currency{CurrencyCode: "KES", EntityID: suite.entityID}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AccountID == accountID &&
			t.TransactionType == domain.ClientInvoice &&
			t.Amount.Equal(amount) &&
			t.CreatedBy == suite.userID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.entityID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(suite.entityID, txn.EntityID)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountFromOtherEntity() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := suite.account(accountID)
	account.EntityID = uuid.NewString()
	amount := decimal.NewFromInt(10)
	req := dto.CreateTransactionRequest{
		AccountID:       accountID,
		TransactionType: string(domain.JournalEntry),
		TransactionDate: time.Now().UTC(),
		Amount:          &amount,
		CurrencyCode:    "KES",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.entityID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCurrency() {
	ctx := context.Background()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(10)
	req := dto.CreateTransactionRequest{
		AccountID:       accountID,
		TransactionType: string(domain.JournalEntry),
		TransactionDate: time.Now().UTC(),
		Amount:          &amount,
		CurrencyCode:    "ZZZ",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(suite.account(accountID), nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, suite.entityID, "ZZZ").
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.entityID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(-10)
	req := dto.CreateTransactionRequest{
		AccountID:       accountID,
		TransactionType: string(domain.JournalEntry),
		TransactionDate: time.Now().UTC(),
		Amount:          &amount,
		CurrencyCode:    "KES",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(suite.account(accountID), nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, suite.entityID, "KES").
		Return(&domain.Currency{CurrencyCode: "KES"}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.entityID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetTransactionByID ---

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_WrongEntityObscured() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), EntityID: uuid.NewString()}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	got, err := suite.service.GetTransactionByID(ctx, suite.entityID, txn.TransactionID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- RecycleTransaction ---

func (suite *TransactionServiceTestSuite) TestRecycleTransaction_Success() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), EntityID: suite.entityID}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTransactionRepo.On("RecycleTransaction", ctx, txn.TransactionID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RecycleTransaction(ctx, suite.entityID, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecycleTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RecycleTransaction(ctx, suite.entityID, transactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "RecycleTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
