package dto

import (
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the body of POST /budgets.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Period     string          `json:"period" binding:"required,oneof=month year"`
	StartDate  time.Time       `json:"start_date" binding:"required"`
}

// UpdateBudgetRequest defines the body of PUT /budgets/:id.
type UpdateBudgetRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Period    *string          `json:"period" binding:"omitempty,oneof=month year"`
	StartDate *time.Time       `json:"start_date"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     string(b.Period),
		StartDate:  b.StartDate,
	}
}
