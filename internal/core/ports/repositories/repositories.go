package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass them around as one value.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryWithTx
	UserRepo         UserRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	BudgetRepo       BudgetRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	PreferencesRepo  PreferencesRepositoryFacade
	ReportingRepo    ReportingRepository
}
