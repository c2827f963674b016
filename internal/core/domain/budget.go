package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence window a budget applies to.
type BudgetPeriod string

const (
	PeriodMonth BudgetPeriod = "month"
	PeriodYear  BudgetPeriod = "year"
)

// Budget caps spending for one category over a period.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	UserID     string          `json:"-"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	AuditFields
}
