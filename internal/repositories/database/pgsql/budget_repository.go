package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
	"github.com/budgettrackr/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, category_id, amount, period, start_date, created_at, updated_at`

func scanBudgetRow(row pgx.Row) (models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.BudgetID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.StartDate, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// FindBudgetByID retrieves one of the user's budgets.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND budget_id = $2;
	`
	modelBudget, err := scanBudgetRow(r.Pool.QueryRow(ctx, query, userID, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// ListBudgets retrieves all of the user's budgets, newest window first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY start_date DESC, budget_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		return scanBudgetRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

// SaveBudget inserts a new budget. One budget per category and period window
// is enforced by a unique index, surfaced as ErrDuplicate.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, user_id, category_id, amount, period, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.CategoryID,
		modelBudget.Amount,
		modelBudget.Period,
		modelBudget.StartDate,
		modelBudget.CreatedAt,
		modelBudget.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save budget %s: %w", modelBudget.BudgetID, err)
	}
	return nil
}

// UpdateBudget updates the mutable fields of an existing budget.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)

	query := `
		UPDATE budgets
		SET category_id = $3, amount = $4, period = $5, start_date = $6, updated_at = $7
		WHERE user_id = $1 AND budget_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelBudget.UserID,
		modelBudget.BudgetID,
		modelBudget.CategoryID,
		modelBudget.Amount,
		modelBudget.Period,
		modelBudget.StartDate,
		modelBudget.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update budget %s: %w", modelBudget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes one of the user's budgets.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE user_id = $1 AND budget_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
