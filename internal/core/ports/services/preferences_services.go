package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// PreferencesSvcFacade defines per-user preference operations.
type PreferencesSvcFacade interface {
	// GetPreferences returns the user's preferences, inserting the defaults
	// on first read.
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)

	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.Preferences, error)
}
