package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates the user matching a verified external
	// identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider string, providerUserID string, emailVerified bool) (*domain.User, error)

	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// DeleteAccount removes the user and everything they own.
	DeleteAccount(ctx context.Context, userID string) error

	// StoreRefreshToken persists the hash of a newly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, rawToken string) error

	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
