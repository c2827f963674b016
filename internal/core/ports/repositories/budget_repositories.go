package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// BudgetRepositoryFacade defines all operations for budget data.
type BudgetRepositoryFacade interface {
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	SaveBudget(ctx context.Context, budget domain.Budget) error

	UpdateBudget(ctx context.Context, budget domain.Budget) error

	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
