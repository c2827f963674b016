package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// CategoryService provides business logic for categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// CreateCategory adds a category; names are unique per user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("category '%s' already exists: %w", name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}

	return &category, nil
}

// ListCategories returns the user's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// UpdateCategory renames an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find category in service: %w", err)
	}

	category.Name = strings.TrimSpace(req.Name)
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("category '%s' already exists: %w", category.Name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category; transactions referencing it keep their
// rows with the category unset.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete category in service: %w", err)
	}
	return nil
}
