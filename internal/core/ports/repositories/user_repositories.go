package repositories

import (
	"context"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail matches either column; used for login where
	// the client sends a single identifier field.
	FindUserByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error

	UpdateUser(ctx context.Context, user domain.User) error

	UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error

	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime *time.Time) error

	// DeleteUser removes the user and all owned rows (transactions, budgets,
	// categories, subscriptions, currencies, notifications, preferences) in
	// one transaction.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
