package domain

import "time"

// Preferences holds per-user display and alerting settings.
type Preferences struct {
	UserID                string    `json:"-"`
	Theme                 string    `json:"theme"`
	DashboardLayout       string    `json:"dashboardLayout"`
	DefaultView           string    `json:"defaultView"`
	WeeklyReport          bool      `json:"weeklyReport"`
	MonthlyReport         bool      `json:"monthlyReport"`
	BudgetAlerts          bool      `json:"budgetAlerts"`
	SpendingNotifications bool      `json:"spendingNotifications"`
	EmailNotifications    bool      `json:"emailNotifications"`
	PushNotifications     bool      `json:"pushNotifications"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// DefaultPreferences are applied the first time a user's preferences are read.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:                userID,
		Theme:                 "dark",
		DashboardLayout:       "standard",
		DefaultView:           "dashboard",
		WeeklyReport:          true,
		MonthlyReport:         false,
		BudgetAlerts:          true,
		SpendingNotifications: true,
		EmailNotifications:    true,
		PushNotifications:     true,
	}
}
