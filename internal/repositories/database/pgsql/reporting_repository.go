package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetMonthlySummaryData aggregates income and expense totals per calendar
// month for transactions dated within [from, to].
func (r *reportingRepository) GetMonthlySummaryData(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlySummaryRow, error) {
	query := `
		SELECT
			date_trunc('month', t.transaction_date) AS month,
			COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN t.type = 'expense' THEN t.amount ELSE 0 END), 0) AS expense
		FROM transactions t
		WHERE t.user_id = $1
			AND t.transaction_date >= $2
			AND t.transaction_date <= $3
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly summary data: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlySummaryRow
	for rows.Next() {
		var row domain.MonthlySummaryRow
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("error scanning monthly summary row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly summary rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.MonthlySummaryRow{}, nil
	}

	return result, nil
}

// GetCategorySpendData aggregates expense totals by category for transactions
// dated within [from, to]. Uncategorized spend is grouped under an empty
// category ID.
func (r *reportingRepository) GetCategorySpendData(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpendRow, error) {
	query := `
		SELECT
			COALESCE(t.category_id, '') AS category_id,
			COALESCE(c.name, 'Uncategorized') AS category_name,
			COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1
			AND t.type = 'expense'
			AND t.transaction_date >= $2
			AND t.transaction_date <= $3
		GROUP BY 1, 2
		ORDER BY total DESC
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying category spend data: %w", err)
	}
	defer rows.Close()

	var result []domain.CategorySpendRow
	for rows.Next() {
		var row domain.CategorySpendRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning category spend row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spend rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.CategorySpendRow{}, nil
	}

	return result, nil
}
