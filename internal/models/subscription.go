package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is the subscriptions table row.
type Subscription struct {
	SubscriptionID string          `db:"subscription_id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	Amount         decimal.Decimal `db:"amount"`
	CurrencyCode   string          `db:"currency"`
	BillingCycle   string          `db:"billing_cycle"`
	NextDueDate    time.Time       `db:"next_due_date"`
	Active         bool            `db:"active"`
	AuditFields
}
