package mapping

import (
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
)

// ToModelPreferences converts domain Preferences to model Preferences
func ToModelPreferences(d domain.Preferences) models.Preferences {
	return models.Preferences{
		UserID:                d.UserID,
		Theme:                 d.Theme,
		DashboardLayout:       d.DashboardLayout,
		DefaultView:           d.DefaultView,
		WeeklyReport:          d.WeeklyReport,
		MonthlyReport:         d.MonthlyReport,
		BudgetAlerts:          d.BudgetAlerts,
		SpendingNotifications: d.SpendingNotifications,
		EmailNotifications:    d.EmailNotifications,
		PushNotifications:     d.PushNotifications,
		UpdatedAt:             d.UpdatedAt,
	}
}

// ToDomainPreferences converts model Preferences to domain Preferences
func ToDomainPreferences(m models.Preferences) domain.Preferences {
	return domain.Preferences{
		UserID:                m.UserID,
		Theme:                 m.Theme,
		DashboardLayout:       m.DashboardLayout,
		DefaultView:           m.DefaultView,
		WeeklyReport:          m.WeeklyReport,
		MonthlyReport:         m.MonthlyReport,
		BudgetAlerts:          m.BudgetAlerts,
		SpendingNotifications: m.SpendingNotifications,
		EmailNotifications:    m.EmailNotifications,
		PushNotifications:     m.PushNotifications,
		UpdatedAt:             m.UpdatedAt,
	}
}
