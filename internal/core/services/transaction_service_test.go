package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/core/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/budgettrackr/budget_tracker_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, title, message, notifType, priority, actionURL string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, title, message, notifType, priority, actionURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListNotificationsResponse), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockCatRepo  *MockCategoryRepository
	mockNotifSvc *MockNotificationService
	service      portssvc.TransactionSvcFacade
	userID       string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCatRepo = new(MockCategoryRepository)
	suite.mockNotifSvc = new(MockNotificationService)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCatRepo, suite.mockNotifSvc)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) transaction(id string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		UserID:          suite.userID,
		Type:            domain.Expense,
		Amount:          decimal.RequireFromString("120.50"),
		CurrencyCode:    "INR",
		TransactionDate: date,
	}
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            "expense",
		Amount:          decimal.RequireFromString("499"),
		Currency:        "inr",
		Description:     "Groceries",
		TransactionDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	notification := &domain.Notification{NotificationID: uuid.NewString()}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.Type == domain.Expense &&
			txn.CurrencyCode == "INR" &&
			txn.TransactionID != ""
	})).Return(nil).Once()
	suite.mockNotifSvc.On("Notify", ctx, suite.userID, "Expense recorded", mock.Anything, "transaction", "low", "").Return(notification, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("INR", txn.CurrencyCode)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NotificationFailureIsBestEffort() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            "income",
		Amount:          decimal.RequireFromString("5000"),
		Currency:        "INR",
		TransactionDate: time.Now(),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifSvc.On("Notify", ctx, suite.userID, "Income recorded", mock.Anything, "transaction", "low", "").Return(nil, errors.New("notifications table unavailable")).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	// The transaction is saved even though the notification failed.
	suite.Require().NoError(err)
	suite.NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            "expense",
		Amount:          decimal.Zero,
		Currency:        "INR",
		TransactionDate: time.Now(),
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		CategoryID:      &categoryID,
		Type:            "expense",
		Amount:          decimal.RequireFromString("10"),
		Currency:        "INR",
		TransactionDate: time.Now(),
	}

	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCatRepo.AssertExpectations(suite.T())
}

// --- ListTransactions ---

func (suite *TransactionServiceTestSuite) TestListTransactions_FullPageYieldsNextToken() {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// Three rows back for a page size of two: the probe row signals more data.
	rows := []domain.Transaction{
		suite.transaction("txn-3", base),
		suite.transaction("txn-2", base.Add(-time.Hour)),
		suite.transaction("txn-1", base.Add(-2*time.Hour)),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.Limit == 3 && f.AfterDate == nil && f.AfterID == nil
	})).Return(rows, nil).Once()

	page, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	suite.Require().NotEmpty(page.NextPageToken)

	// The cursor points at the last returned row.
	cursorDate, cursorID, err := pagination.DecodeToken(page.NextPageToken)
	suite.Require().NoError(err)
	suite.Equal("txn-2", cursorID)
	suite.True(cursorDate.Equal(base.Add(-time.Hour)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LastPageHasNoToken() {
	ctx := context.Background()
	rows := []domain.Transaction{
		suite.transaction("txn-1", time.Now()),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.Limit == 51
	})).Return(rows, nil).Once()

	page, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 1)
	suite.Empty(page.NextPageToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PageTokenDecodedIntoFilter() {
	ctx := context.Background()
	cursorDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(cursorDate, "txn-9")

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.AfterDate != nil && f.AfterDate.Equal(cursorDate) &&
			f.AfterID != nil && *f.AfterID == "txn-9"
	})).Return([]domain.Transaction{}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{PageToken: token})

	suite.Require().NoError(err)
	suite.Empty(page.Transactions)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadPageToken() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{PageToken: "not-a-token"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LimitIsCapped() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.Limit == 201
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Limit: 10000})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- UpdateTransaction ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MergesFields() {
	ctx := context.Background()
	existing := suite.transaction("txn-1", time.Now())
	newAmount := decimal.RequireFromString("75")
	newDescription := "Corrected amount"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, "txn-1").Return(&existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount) && txn.Description == newDescription && txn.CurrencyCode == "INR"
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, "txn-1", dto.UpdateTransactionRequest{
		Amount:      &newAmount,
		Description: &newDescription,
	})

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, "missing", dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- DeleteTransaction ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, suite.userID, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
