package repositories

import (
	"context"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// NotificationRepositoryFacade defines all operations for notification rows.
type NotificationRepositoryFacade interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error)

	CountUnread(ctx context.Context, userID string) (int, error)

	SaveNotification(ctx context.Context, n domain.Notification) error

	MarkRead(ctx context.Context, userID, notificationID string) error

	MarkAllRead(ctx context.Context, userID string) error

	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
