package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// CategorySvcFacade defines all category operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
