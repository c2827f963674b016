package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService provides business logic for budgets.
type BudgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// CreateBudget caps spending for a category over a period. The category must
// exist and belong to the user.
func (s *BudgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category: %w", err)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     domain.BudgetPeriod(req.Period),
		StartDate:  req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("a budget for this category and period already exists: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}

	return &budget, nil
}

// ListBudgets returns the user's budgets, newest window first.
func (s *BudgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// UpdateBudget applies the provided fields to an existing budget.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find budget in service: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		budget.Period = domain.BudgetPeriod(*req.Period)
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	budget.UpdatedAt = time.Now()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("a budget for this category and period already exists: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update budget in service: %w", err)
	}

	return budget, nil
}

// DeleteBudget removes one of the user's budgets.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete budget in service: %w", err)
	}
	return nil
}
