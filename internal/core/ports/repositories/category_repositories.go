package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// CategoryRepositoryFacade defines all operations for category data.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// SaveCategory inserts a category; returns apperrors.ErrDuplicate when the
	// user already has a category with that name.
	SaveCategory(ctx context.Context, category domain.Category) error

	UpdateCategory(ctx context.Context, category domain.Category) error

	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
