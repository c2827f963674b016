package domain

import "github.com/shopspring/decimal"

// BaseCurrencyCode is the fixed reference currency; every stored rate is
// expressed relative to it.
const BaseCurrencyCode = "INR"

// Currency represents one currency known to a user.
//
// RateToINR follows a single convention everywhere: how many INR equal one
// unit of this currency (USD at 83.0 means 1 USD = 83 INR). Rates must be
// strictly positive.
type Currency struct {
	UserID    string          `json:"-"`
	Code      string          `json:"code"` // 3-letter uppercase, e.g. "USD"
	Name      string          `json:"name"`
	RateToINR decimal.Decimal `json:"rate_to_inr"`
	IsDefault bool            `json:"is_default"`
	AuditFields
}
