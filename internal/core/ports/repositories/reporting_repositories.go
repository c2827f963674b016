package repositories

import (
	"context"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries over transactions.
type ReportingRepository interface {
	// GetMonthlySummaryData returns per-month income and expense totals for
	// transactions dated within [from, to].
	GetMonthlySummaryData(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlySummaryRow, error)

	// GetCategorySpendData returns expense totals grouped by category for
	// transactions dated within [from, to].
	GetCategorySpendData(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpendRow, error)
}
