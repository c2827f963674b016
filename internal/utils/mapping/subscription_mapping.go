package mapping

import (
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
)

// ToModelSubscription converts a domain Subscription to a model Subscription
func ToModelSubscription(d domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriptionID: d.SubscriptionID,
		UserID:         d.UserID,
		Name:           d.Name,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		BillingCycle:   string(d.BillingCycle),
		NextDueDate:    d.NextDueDate,
		Active:         d.Active,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubscription converts a model Subscription to a domain Subscription
func ToDomainSubscription(m models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID: m.SubscriptionID,
		UserID:         m.UserID,
		Name:           m.Name,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		BillingCycle:   domain.BillingCycle(m.BillingCycle),
		NextDueDate:    m.NextDueDate,
		Active:         m.Active,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSubscriptionSlice converts a slice of model Subscriptions to domain Subscriptions
func ToDomainSubscriptionSlice(ms []models.Subscription) []domain.Subscription {
	ds := make([]domain.Subscription, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubscription(m)
	}
	return ds
}
