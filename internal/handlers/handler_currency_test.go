package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/budgettrackr/budget_tracker_app/internal/handlers"
	"github.com/budgettrackr/budget_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) AddOrUpsertCurrency(ctx context.Context, userID string, req dto.CreateCurrencyRequest) (*domain.Currency, bool, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Currency), args.Bool(1), args.Error(2)
}

func (m *MockCurrencyService) SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ConvertAmount(amount decimal.Decimal, fromCode, toCode string, currencies []domain.Currency) (decimal.Decimal, error) {
	args := m.Called(amount, fromCode, toCode, currencies)
	if args.Get(0) == nil {
		return decimal.Decimal{}, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	jwtSecret           string
	userID              string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CurrencyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "budget-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidators())

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockCurrencyService = new(MockCurrencyService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, suite.mockCurrencyService)
}

func (suite *CurrencyHandlerTestSuite) doRequest(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CurrencyHandlerTestSuite) currency(code string, rate string, isDefault bool) domain.Currency {
	return domain.Currency{
		UserID:    suite.userID,
		Code:      code,
		Name:      code + " currency",
		RateToINR: decimal.RequireFromString(rate),
		IsDefault: isDefault,
	}
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	stored := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "83", false),
	}
	suite.mockCurrencyService.On("ListCurrencies", mock.Anything, suite.userID).Return(stored, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Currencies, 2)
	suite.Equal("INR", resp.Currencies[0].Code)
	suite.True(resp.Currencies[0].IsDefault)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_Created() {
	saved := suite.currency("CHF", "94.5", false)
	suite.mockCurrencyService.On("AddOrUpsertCurrency", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateCurrencyRequest) bool {
		return req.Code == "CHF" && !req.Force
	})).Return(&saved, true, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", `{"code":"CHF","name":"Swiss Franc","rate_to_inr":"94.5"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CurrencyEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("CHF", resp.Currency.Code)
	suite.Empty(resp.Message)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_ExistingReturnsOKWithMessage() {
	existing := suite.currency("USD", "83", false)
	suite.mockCurrencyService.On("AddOrUpsertCurrency", mock.Anything, suite.userID, mock.Anything).Return(&existing, false, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", `{"code":"USD","name":"US Dollar","rate_to_inr":"90"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Currency already exists", resp.Message)
	suite.True(resp.Currency.RateToINR.Equal(decimal.RequireFromString("83")))
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_InvalidCodeRejectedAtBinding() {
	w := suite.doRequest(http.MethodPost, "/api/v1/currencies", `{"code":"TOOLONG","name":"Bad","rate_to_inr":"1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "AddOrUpsertCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_Success() {
	stored := suite.currency("USD", "83", false)
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, suite.userID, "USD").Return(&stored, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/USD", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, suite.userID, "XYZ").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/XYZ", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestSetDefaultCurrency_Success() {
	updated := suite.currency("USD", "83", true)
	suite.mockCurrencyService.On("SetDefaultCurrency", mock.Anything, suite.userID, "USD").Return(&updated, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/currencies/default", `{"currency_code":"USD"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Currency.IsDefault)
	suite.Equal("Default currency updated", resp.Message)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestSetDefaultCurrency_UnknownCode() {
	suite.mockCurrencyService.On("SetDefaultCurrency", mock.Anything, suite.userID, "XYZ").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/currencies/default", `{"currency_code":"XYZ"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeleteCurrency_Success() {
	deleted := suite.currency("USD", "83", false)
	suite.mockCurrencyService.On("DeleteCurrency", mock.Anything, suite.userID, "USD").Return(&deleted, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/currencies/USD", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Currency.Code)
	suite.Equal("Currency deleted", resp.Message)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeleteCurrency_DefaultConflict() {
	suite.mockCurrencyService.On("DeleteCurrency", mock.Anything, suite.userID, "INR").Return(nil, fmt.Errorf("cannot delete default currency INR while 3 others remain: %w", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/currencies/INR", "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestConvert_Success() {
	stored := []domain.Currency{
		suite.currency("INR", "1", true),
		suite.currency("USD", "80", false),
	}
	suite.mockCurrencyService.On("ListCurrencies", mock.Anything, suite.userID).Return(stored, nil).Once()
	suite.mockCurrencyService.On("ConvertAmount", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(10))
	}), "USD", "INR", stored).Return(decimal.NewFromInt(800), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/convert?from=USD&to=INR&amount=10", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromInt(800)))
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestConvert_MissingParams() {
	w := suite.doRequest(http.MethodGet, "/api/v1/currencies/convert?from=USD", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "ConvertAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
