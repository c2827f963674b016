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
)

// PreferencesService manages per-user display and alerting settings.
type PreferencesService struct {
	preferencesRepo portsrepo.PreferencesRepositoryFacade
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(preferencesRepo portsrepo.PreferencesRepositoryFacade) *PreferencesService {
	return &PreferencesService{preferencesRepo: preferencesRepo}
}

var _ portssvc.PreferencesSvcFacade = (*PreferencesService)(nil)

// GetPreferences returns the user's preferences, inserting the defaults on
// first read so every user always has a row.
func (s *PreferencesService) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := s.preferencesRepo.FindPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get preferences in service: %w", err)
	}

	defaults := domain.DefaultPreferences(userID)
	defaults.UpdatedAt = time.Now()
	if err := s.preferencesRepo.SavePreferences(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to save default preferences: %w", err)
	}

	// Re-read so a concurrent insert still yields one consistent row.
	prefs, err = s.preferencesRepo.FindPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload preferences after defaulting: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences applies the provided fields over the stored (or default)
// preferences.
func (s *PreferencesService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.Preferences, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.DashboardLayout != nil {
		prefs.DashboardLayout = *req.DashboardLayout
	}
	if req.DefaultView != nil {
		prefs.DefaultView = *req.DefaultView
	}
	if req.WeeklyReport != nil {
		prefs.WeeklyReport = *req.WeeklyReport
	}
	if req.MonthlyReport != nil {
		prefs.MonthlyReport = *req.MonthlyReport
	}
	if req.BudgetAlerts != nil {
		prefs.BudgetAlerts = *req.BudgetAlerts
	}
	if req.SpendingNotifications != nil {
		prefs.SpendingNotifications = *req.SpendingNotifications
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		prefs.PushNotifications = *req.PushNotifications
	}
	prefs.UpdatedAt = time.Now()

	if err := s.preferencesRepo.UpdatePreferences(ctx, *prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences in service: %w", err)
	}
	return prefs, nil
}
