package models

import "github.com/shopspring/decimal"

// Currency is the currencies table row. (user_id, code) is the primary key;
// a partial unique index enforces at most one default per user.
type Currency struct {
	UserID    string          `db:"user_id"`
	Code      string          `db:"code"`
	Name      string          `db:"name"`
	RateToINR decimal.Decimal `db:"rate_to_inr"`
	IsDefault bool            `db:"is_default"`
	AuditFields
}
