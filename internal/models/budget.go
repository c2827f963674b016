package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the budgets table row.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Period     string          `db:"period"`
	StartDate  time.Time       `db:"start_date"`
	AuditFields
}
