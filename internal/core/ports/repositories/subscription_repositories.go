package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// SubscriptionRepositoryFacade defines all operations for subscription data.
type SubscriptionRepositoryFacade interface {
	FindSubscriptionByID(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error)

	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)

	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	UpdateSubscription(ctx context.Context, sub domain.Subscription) error

	DeleteSubscription(ctx context.Context, userID, subscriptionID string) error
}
