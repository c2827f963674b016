package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/budgettrackr/budget_tracker_app/internal/utils"
	"github.com/google/uuid"
)

// UserService provides business logic for accounts and credentials.
type UserService struct {
	userRepo                   portsrepo.UserRepositoryFacade
	refreshTokenExpiryDuration time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, refreshTokenExpiryDuration time.Duration) *UserService {
	return &UserService{
		userRepo:                   userRepo,
		refreshTokenExpiryDuration: refreshTokenExpiryDuration,
	}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByID retrieves a user by their UUID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// GetUserByUsernameOrEmail retrieves a user by either identifier.
func (s *UserService) GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by identifier in service: %w", err)
	}
	return user, nil
}

// CreateUser registers a local account with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username or email already in use: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

// CreateOAuthUser finds or creates the user matching a verified external
// identity. An existing account with the same email is reused, so a user who
// registered locally can later sign in with Google.
func (s *UserService) CreateOAuthUser(ctx context.Context, name, email string, provider string, providerUserID string, emailVerified bool) (*domain.User, error) {
	if !emailVerified {
		return nil, fmt.Errorf("%w: email not verified by provider", apperrors.ErrUnauthorized)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username := strings.TrimSpace(name)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		AuthProvider: domain.AuthProvider(provider),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Username collision with a different email; retry with a suffix.
			user.Username = username + "-" + providerUserID[:min(8, len(providerUserID))]
			if retryErr := s.userRepo.SaveUser(ctx, user); retryErr != nil {
				return nil, fmt.Errorf("failed to create oauth user: %w", retryErr)
			}
			return &user, nil
		}
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}

	return &user, nil
}

// UpdateProfile updates the user's username and/or email.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username or email already in use: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update profile in service: %w", err)
	}

	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.AuthProvider != domain.ProviderLocal {
		return fmt.Errorf("%w: password change is only available for local accounts", apperrors.ErrValidation)
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash, time.Now()); err != nil {
		return fmt.Errorf("failed to update password in service: %w", err)
	}
	return nil
}

// DeleteAccount removes the user and everything they own.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete account in service: %w", err)
	}
	return nil
}

// StoreRefreshToken persists the hash of a newly issued refresh token.
func (s *UserService) StoreRefreshToken(ctx context.Context, userID, rawToken string) error {
	expiry := time.Now().Add(s.refreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(rawToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, hash, &expiry); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken drops the stored refresh token (logout).
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
