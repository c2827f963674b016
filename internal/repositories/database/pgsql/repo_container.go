package pgsql

import (
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	subscriptionRepo := newPgxSubscriptionRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	preferencesRepo := newPgxPreferencesRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		UserRepo:         userRepo,
		TransactionRepo:  transactionRepo,
		CategoryRepo:     categoryRepo,
		BudgetRepo:       budgetRepo,
		SubscriptionRepo: subscriptionRepo,
		NotificationRepo: notificationRepo,
		PreferencesRepo:  preferencesRepo,
		ReportingRepo:    reportingRepo,
	}
}
