package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single dated money movement belonging to a user.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"-"`
	CategoryID      *string         `json:"categoryID,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"` // populated on reads via join
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currency"`
	Description     string          `json:"description"`
	Merchant        string          `json:"merchant"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
