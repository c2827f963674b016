package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingCycle is how often a subscription charges.
type BillingCycle string

const (
	CycleWeekly  BillingCycle = "weekly"
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Subscription is a recurring charge the user tracks.
type Subscription struct {
	SubscriptionID string          `json:"subscriptionID"`
	UserID         string          `json:"-"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currency"`
	BillingCycle   BillingCycle    `json:"billingCycle"`
	NextDueDate    time.Time       `json:"nextDueDate"`
	Active         bool            `json:"active"`
	AuditFields
}
