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
	"github.com/budgettrackr/budget_tracker_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, 168*time.Hour)
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "ramesh",
		Email:    "Ramesh@Example.COM",
		Password: "s3cret-go",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ramesh" &&
			u.Email == "ramesh@example.com" &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("ramesh@example.com", user.Email)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "ramesh",
		Email:    "ramesh@example.com",
		Password: "s3cret-go",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateOAuthUser ---

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ReusesExistingEmail() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "ramesh",
		Email:        "ramesh@example.com",
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "ramesh@example.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ramesh K", "Ramesh@example.com", string(domain.ProviderGoogle), "google-sub-123", true)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesNew() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.Username == "New Person" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "New Person", "new@example.com", string(domain.ProviderGoogle), "google-sub-456", true)

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_UsernameCollisionRetriesWithSuffix() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "other@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ramesh"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ramesh-google-s"
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "ramesh", "other@example.com", string(domain.ProviderGoogle), "google-sub-789", true)

	suite.Require().NoError(err)
	suite.Equal("ramesh-google-s", user.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_RejectsUnverifiedEmail() {
	ctx := context.Background()

	_, err := suite.service.CreateOAuthUser(ctx, "x", "x@example.com", string(domain.ProviderGoogle), "sub", false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

// --- ChangePassword ---

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	currentHash, err := utils.HashPassword("old-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       userID,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: currentHash,
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockRepo.On("UpdatePasswordHash", ctx, userID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password", hash)
	}), mock.Anything).Return(nil).Once()

	err = suite.service.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	userID := uuid.NewString()
	currentHash, err := utils.HashPassword("old-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       userID,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: currentHash,
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_OAuthAccountRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:       userID,
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
		CurrentPassword: "whatever",
		NewPassword:     "new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Refresh tokens ---

func (suite *UserServiceTestSuite) TestStoreRefreshToken_PersistsHashNotRaw() {
	ctx := context.Background()
	userID := uuid.NewString()
	raw := "raw-refresh-token-value"

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, utils.HashRefreshToken(raw), mock.MatchedBy(func(expiry *time.Time) bool {
		return expiry != nil && expiry.After(time.Now())
	})).Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, userID, raw)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
