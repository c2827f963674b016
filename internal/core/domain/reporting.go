package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySpendRow is one row of the spend-by-category report.
type CategorySpendRow struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlySummaryRow aggregates one calendar month of transactions.
type MonthlySummaryRow struct {
	Month   time.Time       `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// SummaryReport is the monthly income/expense report for a date range.
type SummaryReport struct {
	Rows         []MonthlySummaryRow `json:"rows"`
	TotalIncome  decimal.Decimal     `json:"totalIncome"`
	TotalExpense decimal.Decimal     `json:"totalExpense"`
	Net          decimal.Decimal     `json:"net"`
}
