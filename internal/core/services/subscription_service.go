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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionService provides business logic for recurring charges.
type SubscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*SubscriptionService)(nil)

// CreateSubscription records a new recurring charge, active by default.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: subscription amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		Amount:         req.Amount,
		CurrencyCode:   strings.ToUpper(req.Currency),
		BillingCycle:   domain.BillingCycle(req.BillingCycle),
		NextDueDate:    req.NextDueDate,
		Active:         true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription in service: %w", err)
	}

	return &sub, nil
}

// ListSubscriptions returns the user's subscriptions, next due first.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions in service: %w", err)
	}
	if subs == nil {
		return []domain.Subscription{}, nil
	}
	return subs, nil
}

// UpdateSubscription applies the provided fields to an existing subscription.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, userID, subscriptionID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, userID, subscriptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find subscription in service: %w", err)
	}

	if req.Name != nil {
		sub.Name = strings.TrimSpace(*req.Name)
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: subscription amount must be positive", apperrors.ErrValidation)
		}
		sub.Amount = *req.Amount
	}
	if req.Currency != nil {
		sub.CurrencyCode = strings.ToUpper(*req.Currency)
	}
	if req.BillingCycle != nil {
		sub.BillingCycle = domain.BillingCycle(*req.BillingCycle)
	}
	if req.NextDueDate != nil {
		sub.NextDueDate = *req.NextDueDate
	}
	if req.Active != nil {
		sub.Active = *req.Active
	}
	sub.UpdatedAt = time.Now()

	if err := s.subscriptionRepo.UpdateSubscription(ctx, *sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription in service: %w", err)
	}

	return sub, nil
}

// DeleteSubscription removes one of the user's subscriptions.
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	if err := s.subscriptionRepo.DeleteSubscription(ctx, userID, subscriptionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete subscription in service: %w", err)
	}
	return nil
}
