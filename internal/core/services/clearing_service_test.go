package services_test

import (
	"context"
	"sync"
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
)

// fakeAssignmentRepo is an in-memory assignment store with the same atomic
// capacity semantics as the database implementation: the check and the
// insert happen under one lock, so concurrent callers cannot jointly exceed
// a capacity.
type fakeAssignmentRepo struct {
	mu                 sync.Mutex
	assignments        []domain.Assignment
	sourceCapacities   map[domain.ClearableRef]decimal.Decimal
	clearingCapacities map[string]decimal.Decimal
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		sourceCapacities:   make(map[domain.ClearableRef]decimal.Decimal),
		clearingCapacities: make(map[string]decimal.Decimal),
	}
}

func (f *fakeAssignmentRepo) ListAssignmentsBySource(ctx context.Context, source domain.ClearableRef) ([]domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Assignment
	for _, a := range f.assignments {
		if a.Source == source {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListAssignmentsByClearedBy(ctx context.Context, transactionID string) ([]domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Assignment
	for _, a := range f.assignments {
		if a.ClearedByTransactionID == transactionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) SumAssignedToSource(ctx context.Context, source domain.ClearableRef) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sumSourceLocked(source), nil
}

func (f *fakeAssignmentRepo) SumAssignedToClearedBy(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sumClearedByLocked(transactionID), nil
}

func (f *fakeAssignmentRepo) CreateAssignment(ctx context.Context, assignment domain.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cap, ok := f.sourceCapacities[assignment.Source]; ok {
		if f.sumSourceLocked(assignment.Source).Add(assignment.Amount).GreaterThan(cap) {
			return apperrors.ErrOverAssignment
		}
	}
	if cap, ok := f.clearingCapacities[assignment.ClearedByTransactionID]; ok {
		if f.sumClearedByLocked(assignment.ClearedByTransactionID).Add(assignment.Amount).GreaterThan(cap) {
			return apperrors.ErrOverAssignment
		}
	}

	f.assignments = append(f.assignments, assignment)
	return nil
}

func (f *fakeAssignmentRepo) sumSourceLocked(source domain.ClearableRef) decimal.Decimal {
	total := decimal.Zero
	for _, a := range f.assignments {
		if a.Source == source {
			total = total.Add(a.Amount)
		}
	}
	return total
}

func (f *fakeAssignmentRepo) sumClearedByLocked(transactionID string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range f.assignments {
		if a.ClearedByTransactionID == transactionID {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// --- Test Suite ---
type ClearingServiceTestSuite struct {
	suite.Suite
	mockAssignmentRepo  *MockAssignmentRepository
	mockBalanceRepo     *MockBalanceRepository
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.ClearingSvcFacade

	entityID string
	userID   string
}

func (suite *ClearingServiceTestSuite) SetupTest() {
	suite.mockAssignmentRepo = new(MockAssignmentRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.service = services.NewClearingService(suite.mockAssignmentRepo, suite.mockBalanceRepo, suite.mockTransactionRepo)
	suite.entityID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ClearingServiceTestSuite) invoice(amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		EntityID:        suite.entityID,
		AccountID:       uuid.NewString(),
		TransactionType: domain.ClientInvoice,
		TransactionDate: date,
		Amount:          decimal.NewFromInt(amount),
		CurrencyCode:    "KES",
	}
}

func (suite *ClearingServiceTestSuite) receipt(amount int64, date time.Time) *domain.Transaction {
	txn := suite.invoice(amount, date)
	txn.TransactionType = domain.ClientReceipt
	return txn
}

// --- Assign ---

func (suite *ClearingServiceTestSuite) TestAssign_Success() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	clearing := suite.receipt(100, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil).Once()
	suite.mockAssignmentRepo.On("CreateAssignment", ctx, mock.MatchedBy(func(a domain.Assignment) bool {
		return a.Source == source.ClearableRef() &&
			a.ClearedByTransactionID == clearing.TransactionID &&
			a.Amount.Equal(decimal.NewFromInt(40)) &&
			a.CurrencyCode == "KES"
	})).Return(nil).Once()

	assignment, err := suite.service.Assign(ctx, suite.entityID, source.ClearableRef(), clearing.TransactionID, decimal.NewFromInt(40), suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(assignment)
	suite.Equal(suite.entityID, assignment.EntityID)
	suite.mockAssignmentRepo.AssertExpectations(suite.T())
}

func (suite *ClearingServiceTestSuite) TestAssign_BalanceSource() {
	ctx := context.Background()
	balance := &domain.Balance{
		BalanceID:       uuid.NewString(),
		EntityID:        suite.entityID,
		AccountID:       uuid.NewString(),
		CurrencyCode:    "KES",
		BalanceType:     domain.DebitBalance,
		TransactionType: domain.JournalEntry,
		TransactionDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(80),
	}
	clearing := suite.receipt(80, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	suite.mockBalanceRepo.On("FindBalanceByID", ctx, balance.BalanceID).Return(balance, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil).Once()
	suite.mockAssignmentRepo.On("CreateAssignment", ctx, mock.AnythingOfType("domain.Assignment")).Return(nil).Once()

	assignment, err := suite.service.Assign(ctx, suite.entityID, balance.ClearableRef(), clearing.TransactionID, decimal.NewFromInt(80), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClearableBalance, assignment.Source.Kind)
	suite.mockAssignmentRepo.AssertExpectations(suite.T())
}

func (suite *ClearingServiceTestSuite) TestAssign_NonPositiveAmount() {
	ctx := context.Background()
	source := domain.ClearableRef{Kind: domain.ClearableTransaction, ID: uuid.NewString()}

	_, err := suite.service.Assign(ctx, suite.entityID, source, uuid.NewString(), decimal.Zero, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *ClearingServiceTestSuite) TestAssign_CurrencyMismatch() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	clearing := suite.receipt(100, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	clearing.CurrencyCode = "USD"

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil).Once()

	_, err := suite.service.Assign(ctx, suite.entityID, source.ClearableRef(), clearing.TransactionID, decimal.NewFromInt(10), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotSameCurrency)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "CreateAssignment", mock.Anything, mock.Anything)
}

func (suite *ClearingServiceTestSuite) TestAssign_SelfClearRejected() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil)

	_, err := suite.service.Assign(ctx, suite.entityID, source.ClearableRef(), source.TransactionID, decimal.NewFromInt(10), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClearingServiceTestSuite) TestAssign_WrongEntity() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	source.EntityID = uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()

	_, err := suite.service.Assign(ctx, suite.entityID, source.ClearableRef(), uuid.NewString(), decimal.NewFromInt(10), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClearingServiceTestSuite) TestAssign_OverAssignmentPropagated() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	clearing := suite.receipt(100, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil).Once()
	suite.mockAssignmentRepo.On("CreateAssignment", ctx, mock.AnythingOfType("domain.Assignment")).
		Return(apperrors.ErrOverAssignment).Once()

	_, err := suite.service.Assign(ctx, suite.entityID, source.ClearableRef(), clearing.TransactionID, decimal.NewFromInt(150), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOverAssignment)
}

// TestAssign_ConcurrentCannotJointlyOverAssign drives two assignments of 60
// against a source of 100 through the real capacity semantics. Exactly one
// must succeed regardless of interleaving.
func (suite *ClearingServiceTestSuite) TestAssign_ConcurrentCannotJointlyOverAssign() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	clearing := suite.receipt(200, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	fake := newFakeAssignmentRepo()
	fake.sourceCapacities[source.ClearableRef()] = source.Amount
	fake.clearingCapacities[clearing.TransactionID] = clearing.Amount

	suite.mockTransactionRepo.On("FindTransactionByID", mock.Anything, source.TransactionID).Return(source, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", mock.Anything, clearing.TransactionID).Return(clearing, nil)

	svc := services.NewClearingService(fake, suite.mockBalanceRepo, suite.mockTransactionRepo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Assign(ctx, suite.entityID, source.ClearableRef(), clearing.TransactionID, decimal.NewFromInt(60), suite.userID)
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			suite.ErrorIs(err, apperrors.ErrOverAssignment)
			rejections++
		}
	}
	suite.Equal(1, successes)
	suite.Equal(1, rejections)

	total, err := fake.SumAssignedToSource(ctx, source.ClearableRef())
	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(60)))
}

// --- UnassignedAmount ---

func (suite *ClearingServiceTestSuite) TestUnassignedAmount_RecomputedFromRows() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()
	suite.mockAssignmentRepo.On("SumAssignedToSource", ctx, source.ClearableRef()).
		Return(decimal.NewFromInt(35), nil).Once()

	remaining, err := suite.service.UnassignedAmount(ctx, suite.entityID, source.ClearableRef())

	suite.Require().NoError(err)
	suite.True(remaining.Equal(decimal.NewFromInt(65)))
	suite.mockAssignmentRepo.AssertExpectations(suite.T())
}

// TestUnassignedAmount_WrongEntity hides clearables of other entities: the
// capacity of a foreign transaction reads as not found, never as a number.
func (suite *ClearingServiceTestSuite) TestUnassignedAmount_WrongEntity() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	source.EntityID = uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()

	_, err := suite.service.UnassignedAmount(ctx, suite.entityID, source.ClearableRef())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "SumAssignedToSource", mock.Anything, mock.Anything)
}

// --- ListAssignmentsBySource ---

func (suite *ClearingServiceTestSuite) TestListAssignmentsBySource_Success() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	recorded := []domain.Assignment{{
		AssignmentID:           uuid.NewString(),
		EntityID:               suite.entityID,
		Source:                 source.ClearableRef(),
		ClearedByTransactionID: uuid.NewString(),
		Amount:                 decimal.NewFromInt(25),
		CurrencyCode:           "KES",
	}}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()
	suite.mockAssignmentRepo.On("ListAssignmentsBySource", ctx, source.ClearableRef()).Return(recorded, nil).Once()

	assignments, err := suite.service.ListAssignmentsBySource(ctx, suite.entityID, source.ClearableRef())

	suite.Require().NoError(err)
	suite.Require().Len(assignments, 1)
	suite.Equal(recorded[0].AssignmentID, assignments[0].AssignmentID)
	suite.mockAssignmentRepo.AssertExpectations(suite.T())
}

func (suite *ClearingServiceTestSuite) TestListAssignmentsBySource_WrongEntity() {
	ctx := context.Background()
	source := suite.invoice(100, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	source.EntityID = uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil).Once()

	_, err := suite.service.ListAssignmentsBySource(ctx, suite.entityID, source.ClearableRef())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "ListAssignmentsBySource", mock.Anything, mock.Anything)
}

// --- AutoClear ---

// TestAutoClear_FIFO matches two sources (50 dated January, 30 dated
// February) against a 40 clearing transaction: the January source absorbs
// all 40, the February source gets nothing.
func (suite *ClearingServiceTestSuite) TestAutoClear_FIFO() {
	ctx := context.Background()
	older := suite.invoice(50, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := suite.invoice(30, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC))
	clearing := suite.receipt(40, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))

	fake := newFakeAssignmentRepo()
	fake.sourceCapacities[older.ClearableRef()] = older.Amount
	fake.sourceCapacities[newer.ClearableRef()] = newer.Amount
	fake.clearingCapacities[clearing.TransactionID] = clearing.Amount

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, older.TransactionID).Return(older, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, newer.TransactionID).Return(newer, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil)

	svc := services.NewClearingService(fake, suite.mockBalanceRepo, suite.mockTransactionRepo)

	// Deliberately pass the newer source first; ordering is by date.
	created, err := svc.AutoClear(ctx, suite.entityID,
		[]domain.ClearableRef{newer.ClearableRef(), older.ClearableRef()},
		[]string{clearing.TransactionID}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.Equal(older.ClearableRef(), created[0].Source)
	suite.True(created[0].Amount.Equal(decimal.NewFromInt(40)))

	remainingOlder, _ := fake.SumAssignedToSource(ctx, older.ClearableRef())
	suite.True(remainingOlder.Equal(decimal.NewFromInt(40)))
	remainingNewer, _ := fake.SumAssignedToSource(ctx, newer.ClearableRef())
	suite.True(remainingNewer.IsZero())
}

// TestAutoClear_SpillsToNextClearing exhausts the oldest clearing
// transaction before moving to the next.
func (suite *ClearingServiceTestSuite) TestAutoClear_SpillsToNextClearing() {
	ctx := context.Background()
	source := suite.invoice(70, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	first := suite.receipt(40, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC))
	second := suite.receipt(100, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))

	fake := newFakeAssignmentRepo()
	fake.sourceCapacities[source.ClearableRef()] = source.Amount
	fake.clearingCapacities[first.TransactionID] = first.Amount
	fake.clearingCapacities[second.TransactionID] = second.Amount

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, first.TransactionID).Return(first, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, second.TransactionID).Return(second, nil)

	svc := services.NewClearingService(fake, suite.mockBalanceRepo, suite.mockTransactionRepo)

	created, err := svc.AutoClear(ctx, suite.entityID,
		[]domain.ClearableRef{source.ClearableRef()},
		[]string{second.TransactionID, first.TransactionID}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(created, 2)
	suite.Equal(first.TransactionID, created[0].ClearedByTransactionID)
	suite.True(created[0].Amount.Equal(decimal.NewFromInt(40)))
	suite.Equal(second.TransactionID, created[1].ClearedByTransactionID)
	suite.True(created[1].Amount.Equal(decimal.NewFromInt(30)))
}

// TestAutoClear_SkipsOtherCurrencies leaves a USD source untouched by a KES
// clearing transaction.
func (suite *ClearingServiceTestSuite) TestAutoClear_SkipsOtherCurrencies() {
	ctx := context.Background()
	source := suite.invoice(50, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	source.CurrencyCode = "USD"
	clearing := suite.receipt(50, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC))

	fake := newFakeAssignmentRepo()
	fake.sourceCapacities[source.ClearableRef()] = source.Amount
	fake.clearingCapacities[clearing.TransactionID] = clearing.Amount

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, source.TransactionID).Return(source, nil)
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, clearing.TransactionID).Return(clearing, nil)

	svc := services.NewClearingService(fake, suite.mockBalanceRepo, suite.mockTransactionRepo)

	created, err := svc.AutoClear(ctx, suite.entityID,
		[]domain.ClearableRef{source.ClearableRef()},
		[]string{clearing.TransactionID}, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(created)
}

// --- Run Suite ---
func TestClearingService(t *testing.T) {
	suite.Run(t, new(ClearingServiceTestSuite))
}
