package services

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
)

// NotificationSvcFacade defines all notification operations.
type NotificationSvcFacade interface {
	// Notify stores a notification row for the user.
	Notify(ctx context.Context, userID, title, message, notifType, priority, actionURL string) (*domain.Notification, error)

	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)

	MarkRead(ctx context.Context, userID, notificationID string) error

	MarkAllRead(ctx context.Context, userID string) error

	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
