package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/core/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockCatRepo    *MockCategoryRepository
	service        portssvc.BudgetSvcFacade
	userID         string
	categoryID     string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCatRepo = new(MockCategoryRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCatRepo)
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) category() *domain.Category {
	return &domain.Category{
		CategoryID: suite.categoryID,
		UserID:     suite.userID,
		Name:       "Groceries",
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Amount:     decimal.RequireFromString("12000"),
		Period:     "month",
		StartDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).Return(suite.category(), nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.UserID == suite.userID &&
			b.CategoryID == suite.categoryID &&
			b.Period == domain.BudgetPeriod("month") &&
			b.BudgetID != ""
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(suite.categoryID, budget.CategoryID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockCatRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Amount:     decimal.RequireFromString("100"),
		Period:     "month",
		StartDate:  time.Now(),
	}

	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateWindow() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Amount:     decimal.RequireFromString("100"),
		Period:     "month",
		StartDate:  time.Now(),
	}

	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).Return(suite.category(), nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Amount:     decimal.Zero,
		Period:     "month",
		StartDate:  time.Now(),
	}

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCatRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_MergesFields() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	existing := &domain.Budget{
		BudgetID:   budgetID,
		UserID:     suite.userID,
		CategoryID: suite.categoryID,
		Amount:     decimal.RequireFromString("5000"),
		Period:     domain.BudgetPeriod("month"),
		StartDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	newAmount := decimal.RequireFromString("7500")

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.userID, budgetID).Return(existing, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Amount.Equal(newAmount) && b.Period == domain.BudgetPeriod("month")
	})).Return(nil).Once()

	budget, err := suite.service.UpdateBudget(ctx, suite.userID, budgetID, dto.UpdateBudgetRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(budget.Amount.Equal(newAmount))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_NotFound() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateBudget(ctx, suite.userID, "missing", dto.UpdateBudgetRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListBudgets_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID).Return(nil, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(budgets)
	suite.Empty(budgets)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
