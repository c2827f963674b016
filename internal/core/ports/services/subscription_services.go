package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// SubscriptionSvcFacade defines all subscription operations.
type SubscriptionSvcFacade interface {
	CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)

	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)

	UpdateSubscription(ctx context.Context, userID, subscriptionID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error)

	DeleteSubscription(ctx context.Context, userID, subscriptionID string) error
}
