package dto

import (
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the body of POST /currencies.
//
// Force turns the idempotent create into an upsert: without it, posting an
// existing code returns the stored row untouched.
type CreateCurrencyRequest struct {
	Code      string          `json:"code" binding:"required,currencycode"`
	Name      string          `json:"name" binding:"required"`
	RateToINR decimal.Decimal `json:"rate_to_inr" binding:"required"`
	IsDefault bool            `json:"is_default"`
	Force     bool            `json:"force"`
}

// SetDefaultCurrencyRequest defines the body of PUT /currencies/default.
type SetDefaultCurrencyRequest struct {
	CurrencyCode string `json:"currency_code" binding:"required,currencycode"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	RateToINR decimal.Decimal `json:"rate_to_inr"`
	IsDefault bool            `json:"is_default"`
}

// ListCurrenciesResponse wraps the currency list the way the API has always
// shaped it.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// CurrencyEnvelope wraps a single currency plus an optional message.
type CurrencyEnvelope struct {
	Currency CurrencyResponse `json:"currency"`
	Message  string           `json:"message,omitempty"`
}

// ConvertResponse is the result of GET /currencies/convert.
type ConvertResponse struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:      curr.Code,
		Name:      curr.Name,
		RateToINR: curr.RateToINR,
		IsDefault: curr.IsDefault,
	}
}

// ToListCurrenciesResponse converts a slice of domain.Currency to the list DTO
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return ListCurrenciesResponse{Currencies: res}
}
