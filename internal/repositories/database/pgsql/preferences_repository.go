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

type PgxPreferencesRepository struct {
	BaseRepository
}

// newPgxPreferencesRepository creates a new repository for user preferences.
func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.PreferencesRepositoryFacade {
	return &PgxPreferencesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PreferencesRepositoryFacade = (*PgxPreferencesRepository)(nil)

const preferencesColumns = `user_id, theme, dashboard_layout, default_view, weekly_report, monthly_report, budget_alerts, spending_notifications, email_notifications, push_notifications, updated_at`

func scanPreferencesRow(row pgx.Row) (models.Preferences, error) {
	var p models.Preferences
	err := row.Scan(
		&p.UserID,
		&p.Theme,
		&p.DashboardLayout,
		&p.DefaultView,
		&p.WeeklyReport,
		&p.MonthlyReport,
		&p.BudgetAlerts,
		&p.SpendingNotifications,
		&p.EmailNotifications,
		&p.PushNotifications,
		&p.UpdatedAt,
	)
	return p, err
}

// FindPreferences returns ErrNotFound when the user has no preferences row yet.
func (r *PgxPreferencesRepository) FindPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	query := `
		SELECT ` + preferencesColumns + `
		FROM user_preferences
		WHERE user_id = $1;
	`
	modelPrefs, err := scanPreferencesRow(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences for user %s: %w", userID, err)
	}

	domainPrefs := mapping.ToDomainPreferences(modelPrefs)
	return &domainPrefs, nil
}

// SavePreferences inserts the user's preferences row. Concurrent first reads
// may race to insert; the conflict clause keeps the earlier row.
func (r *PgxPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	modelPrefs := mapping.ToModelPreferences(prefs)

	query := `
		INSERT INTO user_preferences (` + preferencesColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPrefs.UserID,
		modelPrefs.Theme,
		modelPrefs.DashboardLayout,
		modelPrefs.DefaultView,
		modelPrefs.WeeklyReport,
		modelPrefs.MonthlyReport,
		modelPrefs.BudgetAlerts,
		modelPrefs.SpendingNotifications,
		modelPrefs.EmailNotifications,
		modelPrefs.PushNotifications,
		modelPrefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences for user %s: %w", modelPrefs.UserID, err)
	}
	return nil
}

// UpdatePreferences replaces the user's preferences row.
func (r *PgxPreferencesRepository) UpdatePreferences(ctx context.Context, prefs domain.Preferences) error {
	modelPrefs := mapping.ToModelPreferences(prefs)

	query := `
		UPDATE user_preferences
		SET theme = $2, dashboard_layout = $3, default_view = $4, weekly_report = $5, monthly_report = $6,
		    budget_alerts = $7, spending_notifications = $8, email_notifications = $9, push_notifications = $10, updated_at = $11
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelPrefs.UserID,
		modelPrefs.Theme,
		modelPrefs.DashboardLayout,
		modelPrefs.DefaultView,
		modelPrefs.WeeklyReport,
		modelPrefs.MonthlyReport,
		modelPrefs.BudgetAlerts,
		modelPrefs.SpendingNotifications,
		modelPrefs.EmailNotifications,
		modelPrefs.PushNotifications,
		modelPrefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update preferences for user %s: %w", modelPrefs.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
