package domain

import "time"

// Notification is an in-app message row. Delivery (email, push) is out of
// scope; only storage and read-state management live here.
type Notification struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"-"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`     // e.g. "transaction", "budget"
	Priority       string    `json:"priority"` // low | medium | high
	ActionURL      string    `json:"actionURL,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
