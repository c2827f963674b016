package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. CategoryName is read-only,
// populated by the list query's category join.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	CategoryID      sql.NullString  `db:"category_id"`
	CategoryName    sql.NullString  `db:"category_name"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency"`
	Description     string          `db:"description"`
	Merchant        string          `db:"merchant"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
