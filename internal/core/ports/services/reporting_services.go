package services

import (
	"context"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// ReportingSvcFacade defines the read-only report operations.
type ReportingSvcFacade interface {
	// MonthlySummary aggregates income and expense per month over [from, to].
	MonthlySummary(ctx context.Context, userID string, from, to time.Time) (*domain.SummaryReport, error)

	// SpendByCategory totals expenses per category over [from, to].
	SpendByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpendRow, error)
}
