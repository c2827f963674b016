package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// PreferencesRepositoryFacade defines operations for per-user preferences.
type PreferencesRepositoryFacade interface {
	// FindPreferences returns apperrors.ErrNotFound when the user has no row
	// yet; the service inserts defaults in that case.
	FindPreferences(ctx context.Context, userID string) (*domain.Preferences, error)

	SavePreferences(ctx context.Context, prefs domain.Preferences) error

	UpdatePreferences(ctx context.Context, prefs domain.Preferences) error
}
