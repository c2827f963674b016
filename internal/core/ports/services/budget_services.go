package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// BudgetSvcFacade defines all budget operations.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
