package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves one of the user's currencies by its code.
	FindCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all of the user's currencies, default first,
	// then by code ascending.
	ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
//
// Every method that touches the default flag runs clear-then-set inside a
// single database transaction; a partially applied default is never
// observable.
type CurrencyWriter interface {
	// UpsertCurrency inserts or updates a currency. When clearDefaults is
	// true, every other currency of the same user has its default flag
	// cleared in the same transaction.
	UpsertCurrency(ctx context.Context, currency domain.Currency, clearDefaults bool) (*domain.Currency, error)

	// SetDefaultCurrency clears all default flags for the user and sets the
	// flag on the currency matching code, atomically. Returns
	// apperrors.ErrNotFound (and rolls back the clear) when no such currency
	// exists.
	SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error)

	// DeleteCurrency removes the currency and returns the deleted row.
	// Returns apperrors.ErrNotFound when absent, and apperrors.ErrConflict
	// when the target is the user's default and other currencies remain.
	DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error)

	// SeedCurrencies inserts the given currencies in one transaction,
	// skipping codes that already exist.
	SeedCurrencies(ctx context.Context, currencies []domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
