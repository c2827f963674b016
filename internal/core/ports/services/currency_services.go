package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves the user's currencies, seeding the popular set
	// on first use.
	ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error)

	// GetCurrencyByCode retrieves one of the user's currencies.
	GetCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error)

	// ConvertAmount converts between two currencies drawn from the provided
	// set, going through the INR base.
	ConvertAmount(amount decimal.Decimal, fromCode, toCode string, currencies []domain.Currency) (decimal.Decimal, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// AddOrUpsertCurrency creates a currency, or returns the existing row
	// untouched when the code is taken and force is false. The bool result is
	// true when a row was actually written.
	AddOrUpsertCurrency(ctx context.Context, userID string, req dto.CreateCurrencyRequest) (*domain.Currency, bool, error)

	// SetDefaultCurrency makes the named currency the user's single default.
	SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error)

	// DeleteCurrency removes a currency and returns the deleted row.
	DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
