package services

import (
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification service first; transaction creation depends on it.
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo, cfg.RefreshTokenExpiryDuration)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, container.Notification)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Preferences = NewPreferencesService(repos.PreferencesRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
