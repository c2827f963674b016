package dto

import (
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest defines the body of POST /subscriptions.
type CreateSubscriptionRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Currency     string          `json:"currency" binding:"required,currencycode"`
	BillingCycle string          `json:"billing_cycle" binding:"required,oneof=weekly monthly yearly"`
	NextDueDate  time.Time       `json:"next_due_date" binding:"required"`
}

// UpdateSubscriptionRequest defines the body of PUT /subscriptions/:id.
type UpdateSubscriptionRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	Currency     *string          `json:"currency" binding:"omitempty,currencycode"`
	BillingCycle *string          `json:"billing_cycle" binding:"omitempty,oneof=weekly monthly yearly"`
	NextDueDate  *time.Time       `json:"next_due_date"`
	Active       *bool            `json:"active"`
}

// SubscriptionResponse defines the data returned for a subscription.
type SubscriptionResponse struct {
	SubscriptionID string          `json:"subscriptionID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	BillingCycle   string          `json:"billingCycle"`
	NextDueDate    time.Time       `json:"nextDueDate"`
	Active         bool            `json:"active"`
}

// ToSubscriptionResponse converts a domain.Subscription to its response DTO
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		Name:           s.Name,
		Amount:         s.Amount,
		Currency:       s.CurrencyCode,
		BillingCycle:   string(s.BillingCycle),
		NextDueDate:    s.NextDueDate,
		Active:         s.Active,
	}
}
