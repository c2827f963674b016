package dto

import "github.com/budgettrackr/budget_tracker_app/internal/core/domain"

// UpdatePreferencesRequest defines the body of PUT /users/preferences.
// Every field is optional; omitted ones keep their stored value.
type UpdatePreferencesRequest struct {
	Theme                 *string `json:"theme" binding:"omitempty,oneof=dark light"`
	DashboardLayout       *string `json:"dashboard_layout"`
	DefaultView           *string `json:"default_view"`
	WeeklyReport          *bool   `json:"weekly_report"`
	MonthlyReport         *bool   `json:"monthly_report"`
	BudgetAlerts          *bool   `json:"budget_alerts"`
	SpendingNotifications *bool   `json:"spending_notifications"`
	EmailNotifications    *bool   `json:"email_notifications"`
	PushNotifications     *bool   `json:"push_notifications"`
}

// PreferencesResponse defines the data returned for user preferences.
type PreferencesResponse struct {
	Theme                 string `json:"theme"`
	DashboardLayout       string `json:"dashboard_layout"`
	DefaultView           string `json:"default_view"`
	WeeklyReport          bool   `json:"weekly_report"`
	MonthlyReport         bool   `json:"monthly_report"`
	BudgetAlerts          bool   `json:"budget_alerts"`
	SpendingNotifications bool   `json:"spending_notifications"`
	EmailNotifications    bool   `json:"email_notifications"`
	PushNotifications     bool   `json:"push_notifications"`
}

// ToPreferencesResponse converts domain.Preferences to its response DTO
func ToPreferencesResponse(p *domain.Preferences) PreferencesResponse {
	return PreferencesResponse{
		Theme:                 p.Theme,
		DashboardLayout:       p.DashboardLayout,
		DefaultView:           p.DefaultView,
		WeeklyReport:          p.WeeklyReport,
		MonthlyReport:         p.MonthlyReport,
		BudgetAlerts:          p.BudgetAlerts,
		SpendingNotifications: p.SpendingNotifications,
		EmailNotifications:    p.EmailNotifications,
		PushNotifications:     p.PushNotifications,
	}
}
