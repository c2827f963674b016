package services_test

import (
	"context"
	"testing"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/core/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpsertCurrency(ctx context.Context, currency domain.Currency, clearDefaults bool) (*domain.Currency, error) {
	args := m.Called(ctx, currency, clearDefaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SeedCurrencies(ctx context.Context, currencies []domain.Currency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCurrencyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
	userID   string
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *CurrencyServiceTestSuite) currency(code string, rate string, isDefault bool) domain.Currency {
	return domain.Currency{
		UserID:    suite.userID,
		Code:      code,
		Name:      code + " currency",
		RateToINR: decimal.RequireFromString(rate),
		IsDefault: isDefault,
	}
}

// --- ListCurrencies ---

func (suite *CurrencyServiceTestSuite) TestListCurrencies_ReturnsExisting() {
	ctx := context.Background()
	stored := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "83", false),
	}
	suite.mockRepo.On("ListCurrencies", ctx, suite.userID).Return(stored, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(currencies, 2)
	suite.Equal("INR", currencies[0].Code)
	suite.True(currencies[0].IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SeedCurrencies", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_SeedsOnFirstUse() {
	ctx := context.Background()
	seeded := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "83", false),
	}

	suite.mockRepo.On("ListCurrencies", ctx, suite.userID).Return([]domain.Currency{}, nil).Once()
	suite.mockRepo.On("SeedCurrencies", ctx, mock.MatchedBy(func(currencies []domain.Currency) bool {
		if len(currencies) == 0 {
			return false
		}
		defaults := 0
		hasINR := false
		for _, c := range currencies {
			if c.UserID != suite.userID {
				return false
			}
			if c.IsDefault {
				defaults++
			}
			if c.Code == domain.BaseCurrencyCode {
				hasINR = true
				if !c.RateToINR.Equal(decimal.NewFromInt(1)) {
					return false
				}
			}
		}
		return hasINR && defaults == 1
	})).Return(nil).Once()
	suite.mockRepo.On("ListCurrencies", ctx, suite.userID).Return(seeded, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(currencies, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- AddOrUpsertCurrency ---

func (suite *CurrencyServiceTestSuite) TestAddCurrency_CreatesNew() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:      "chf",
		Name:      "Swiss Franc",
		RateToINR: decimal.RequireFromString("94.5"),
	}
	saved := suite.currency("CHF", "94.5", false)

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.userID, "CHF").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpsertCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "CHF" && c.Name == "Swiss Franc" && !c.IsDefault
	}), false).Return(&saved, nil).Once()

	currency, written, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(written)
	suite.Equal("CHF", currency.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_ExistingWithoutForceIsNoop() {
	ctx := context.Background()
	existing := suite.currency("USD", "83", false)
	req := dto.CreateCurrencyRequest{
		Code:      "USD",
		Name:      "US Dollar (updated)",
		RateToINR: decimal.RequireFromString("90"),
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.userID, "USD").Return(&existing, nil).Once()

	currency, written, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.False(written)
	suite.Equal(existing.RateToINR, currency.RateToINR)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_ForceOverwrites() {
	ctx := context.Background()
	existing := suite.currency("USD", "83", false)
	req := dto.CreateCurrencyRequest{
		Code:      "USD",
		Name:      "US Dollar",
		RateToINR: decimal.RequireFromString("90"),
		Force:     true,
	}
	saved := suite.currency("USD", "90", false)

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.userID, "USD").Return(&existing, nil).Once()
	suite.mockRepo.On("UpsertCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.RateToINR.Equal(decimal.RequireFromString("90"))
	}), false).Return(&saved, nil).Once()

	currency, written, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(written)
	suite.True(currency.RateToINR.Equal(decimal.RequireFromString("90")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_ForceKeepsExistingDefaultFlag() {
	ctx := context.Background()
	existing := suite.currency("INR", "1", true)
	req := dto.CreateCurrencyRequest{
		Code:      "INR",
		Name:      "Indian Rupee",
		RateToINR: decimal.NewFromInt(1),
		Force:     true,
	}
	saved := suite.currency("INR", "1", true)

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.userID, "INR").Return(&existing, nil).Once()
	// A rate update must not silently drop the default flag.
	suite.mockRepo.On("UpsertCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.IsDefault
	}), true).Return(&saved, nil).Once()

	currency, written, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(written)
	suite.True(currency.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_AsDefaultClearsOthers() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:      "EUR",
		Name:      "Euro",
		RateToINR: decimal.RequireFromString("90"),
		IsDefault: true,
	}
	saved := suite.currency("EUR", "90", true)

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.userID, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpsertCurrency", ctx, mock.Anything, true).Return(&saved, nil).Once()

	currency, written, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(written)
	suite.True(currency.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_RejectsNonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:      "USD",
		Name:      "US Dollar",
		RateToINR: decimal.Zero,
	}

	_, _, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestAddCurrency_RejectsBadCode() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:      "US",
		Name:      "US Dollar",
		RateToINR: decimal.RequireFromString("83"),
	}

	_, _, err := suite.service.AddOrUpsertCurrency(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- SetDefaultCurrency ---

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_Success() {
	ctx := context.Background()
	updated := suite.currency("USD", "83", true)

	suite.mockRepo.On("SetDefaultCurrency", ctx, suite.userID, "USD").Return(&updated, nil).Once()

	currency, err := suite.service.SetDefaultCurrency(ctx, suite.userID, "usd")

	suite.Require().NoError(err)
	suite.True(currency.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_UnknownCode() {
	ctx := context.Background()

	suite.mockRepo.On("SetDefaultCurrency", ctx, suite.userID, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetDefaultCurrency(ctx, suite.userID, "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- DeleteCurrency ---

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Success() {
	ctx := context.Background()
	deleted := suite.currency("USD", "83", false)

	suite.mockRepo.On("DeleteCurrency", ctx, suite.userID, "USD").Return(&deleted, nil).Once()

	currency, err := suite.service.DeleteCurrency(ctx, suite.userID, "USD")

	suite.Require().NoError(err)
	suite.Equal("USD", currency.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_DefaultWithOthersRemaining() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, suite.userID, "INR").Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.DeleteCurrency(ctx, suite.userID, "INR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, suite.userID, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DeleteCurrency(ctx, suite.userID, "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ConvertAmount ---

func (suite *CurrencyServiceTestSuite) TestConvertAmount_ThroughBase() {
	currencies := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "80", false),
		suite.currency("EUR", "100", false),
	}

	// 10 USD = 800 INR = 8 EUR
	result, err := suite.service.ConvertAmount(decimal.NewFromInt(10), "USD", "EUR", currencies)

	suite.Require().NoError(err)
	suite.True(result.Equal(decimal.NewFromInt(8)), "got %s", result)
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_RoundTrip() {
	currencies := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "80", false),
		suite.currency("EUR", "100", false),
	}
	amount := decimal.RequireFromString("123.45")

	there, err := suite.service.ConvertAmount(amount, "USD", "EUR", currencies)
	suite.Require().NoError(err)
	back, err := suite.service.ConvertAmount(there, "EUR", "USD", currencies)
	suite.Require().NoError(err)

	suite.True(back.Equal(amount), "round trip gave %s", back)
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_SameCode() {
	currencies := []domain.Currency{suite.currency("USD", "80", false)}

	result, err := suite.service.ConvertAmount(decimal.NewFromInt(42), "USD", "usd", currencies)

	suite.Require().NoError(err)
	suite.True(result.Equal(decimal.NewFromInt(42)))
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_UnknownCurrency() {
	currencies := []domain.Currency{suite.currency("INR", "1", true)}

	_, err := suite.service.ConvertAmount(decimal.NewFromInt(10), "USD", "INR", currencies)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_NonPositiveRate() {
	currencies := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("BAD", "0", false),
	}

	_, err := suite.service.ConvertAmount(decimal.NewFromInt(10), "BAD", "INR", currencies)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
