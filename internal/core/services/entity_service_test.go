package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/core/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
)

// --- Test Suite ---
type EntityServiceTestSuite struct {
	suite.Suite
	mockEntityRepo   *MockEntityRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	mockPeriodRepo   *MockReportingPeriodRepository
	service          portssvc.EntitySvcFacade

	userID string
}

func (suite *EntityServiceTestSuite) SetupTest() {
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockPeriodRepo = new(MockReportingPeriodRepository)
	suite.service = services.NewEntityService(suite.mockEntityRepo, suite.mockCurrencyRepo, suite.mockRateRepo, suite.mockPeriodRepo)
	suite.userID = uuid.NewString()
}

// --- CreateEntity ---

func (suite *EntityServiceTestSuite) TestCreateEntity_BootstrapsDefaults() {
	ctx := context.Background()
	req := dto.CreateEntityRequest{
		Name:                   "Acme Ltd",
		FunctionalCurrencyCode: "KES",
		CurrencySymbol:         "KSh",
		CurrencyName:           "Kenyan Shilling",
		CalendarYear:           2025,
		PeriodStart:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockEntityRepo.On("SaveEntity", ctx, mock.MatchedBy(func(e domain.Entity) bool {
		return e.Name == req.Name && e.FunctionalCurrencyCode == "KES" && e.IsActive
	})).Return(nil).Once()
	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "KES" && c.Symbol == "KSh"
	})).Return(nil).Once()
	suite.mockPeriodRepo.On("SaveReportingPeriod", ctx, mock.MatchedBy(func(p domain.ReportingPeriod) bool {
		return p.CalendarYear == 2025 && p.Status == domain.PeriodOpen && p.PeriodStart.Equal(req.PeriodStart)
	})).Return(nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "KES" && r.Rate.Equal(decimal.NewFromInt(1)) && r.ValidFrom.Equal(req.PeriodStart)
	})).Return(nil).Once()

	entity, err := suite.service.CreateEntity(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entity)
	suite.Equal("KES", entity.FunctionalCurrencyCode)
	suite.mockEntityRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockPeriodRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestCreateEntity_SaveError() {
	ctx := context.Background()
	req := dto.CreateEntityRequest{Name: "Broken Ltd", FunctionalCurrencyCode: "KES"}
	expectedErr := assert.AnError

	suite.mockEntityRepo.On("SaveEntity", ctx, mock.AnythingOfType("domain.Entity")).Return(expectedErr).Once()

	entity, err := suite.service.CreateEntity(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entity)
	suite.ErrorIs(err, expectedErr)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

// --- Tenant context resolution ---

func (suite *EntityServiceTestSuite) TestCurrentReportingPeriod_Success() {
	ctx := context.Background()
	entityID := uuid.NewString()
	asOf := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	expected := &domain.ReportingPeriod{ReportingPeriodID: uuid.NewString(), EntityID: entityID, CalendarYear: 2025}

	suite.mockPeriodRepo.On("FindReportingPeriodByYear", ctx, entityID, 2025).Return(expected, nil).Once()

	period, err := suite.service.CurrentReportingPeriod(ctx, entityID, asOf)

	suite.Require().NoError(err)
	suite.Equal(expected, period)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestCurrentReportingPeriod_NoPeriod() {
	ctx := context.Background()
	entityID := uuid.NewString()
	asOf := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindReportingPeriodByYear", ctx, entityID, 2030).Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.CurrentReportingPeriod(ctx, entityID, asOf)

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, services.ErrNoOpenPeriod)
}

func (suite *EntityServiceTestSuite) TestDefaultCurrency_ResolvesFunctional() {
	ctx := context.Background()
	entityID := uuid.NewString()
	entity := &domain.Entity{EntityID: entityID, FunctionalCurrencyCode: "KES"}
	currency := &domain.Currency{CurrencyCode: "KES", EntityID: entityID}

	suite.mockEntityRepo.On("FindEntityByID", ctx, entityID).Return(entity, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, entityID, "KES").Return(currency, nil).Once()

	got, err := suite.service.DefaultCurrency(ctx, entityID)

	suite.Require().NoError(err)
	suite.Equal(currency, got)
}

func (suite *EntityServiceTestSuite) TestDefaultExchangeRate_Success() {
	ctx := context.Background()
	entityID := uuid.NewString()
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entity := &domain.Entity{EntityID: entityID, FunctionalCurrencyCode: "KES"}
	rate := &domain.ExchangeRate{ExchangeRateID: uuid.NewString(), CurrencyCode: "KES", Rate: decimal.NewFromInt(1)}

	suite.mockEntityRepo.On("FindEntityByID", ctx, entityID).Return(entity, nil).Once()
	suite.mockRateRepo.On("FindRateForDate", ctx, entityID, "KES", asOf).Return(rate, nil).Once()

	got, err := suite.service.DefaultExchangeRate(ctx, entityID, asOf)

	suite.Require().NoError(err)
	suite.Equal(rate, got)
}

func (suite *EntityServiceTestSuite) TestDefaultExchangeRate_NoneApplies() {
	ctx := context.Background()
	entityID := uuid.NewString()
	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	entity := &domain.Entity{EntityID: entityID, FunctionalCurrencyCode: "KES"}

	suite.mockEntityRepo.On("FindEntityByID", ctx, entityID).Return(entity, nil).Once()
	suite.mockRateRepo.On("FindRateForDate", ctx, entityID, "KES", asOf).Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.DefaultExchangeRate(ctx, entityID, asOf)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, services.ErrNoRateFound)
}

// --- Run Suite ---
func TestEntityService(t *testing.T) {
	suite.Run(t, new(EntityServiceTestSuite))
}
