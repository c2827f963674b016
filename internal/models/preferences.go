package models

import "time"

// Preferences is the user_preferences table row.
type Preferences struct {
	UserID                string    `db:"user_id"`
	Theme                 string    `db:"theme"`
	DashboardLayout       string    `db:"dashboard_layout"`
	DefaultView           string    `db:"default_view"`
	WeeklyReport          bool      `db:"weekly_report"`
	MonthlyReport         bool      `db:"monthly_report"`
	BudgetAlerts          bool      `db:"budget_alerts"`
	SpendingNotifications bool      `db:"spending_notifications"`
	EmailNotifications    bool      `db:"email_notifications"`
	PushNotifications     bool      `db:"push_notifications"`
	UpdatedAt             time.Time `db:"updated_at"`
}
