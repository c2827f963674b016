package services

import (
	"context"
	"fmt"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService computes read-only aggregate reports over transactions.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to date must not precede from date", apperrors.ErrValidation)
	}
	return nil
}

// MonthlySummary aggregates income and expense per calendar month over
// [from, to] and totals the range.
func (s *ReportingService) MonthlySummary(ctx context.Context, userID string, from, to time.Time) (*domain.SummaryReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetMonthlySummaryData(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary data: %w", err)
	}

	report := &domain.SummaryReport{
		Rows:         rows,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, row := range rows {
		report.TotalIncome = report.TotalIncome.Add(row.Income)
		report.TotalExpense = report.TotalExpense.Add(row.Expense)
	}
	report.Net = report.TotalIncome.Sub(report.TotalExpense)

	return report, nil
}

// SpendByCategory totals expenses per category over [from, to].
func (s *ReportingService) SpendByCategory(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpendRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetCategorySpendData(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get category spend data: %w", err)
	}
	return rows, nil
}
