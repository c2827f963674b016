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
	"github.com/google/uuid"
)

// NotificationService stores and manages in-app notification rows. Delivery
// channels are out of scope.
type NotificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

const maxNotificationPageSize = 200

// Notify stores a notification row for the user.
func (s *NotificationService) Notify(ctx context.Context, userID, title, message, notifType, priority, actionURL string) (*domain.Notification, error) {
	if priority == "" {
		priority = "low"
	}

	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		Type:           notifType,
		Priority:       priority,
		ActionURL:      actionURL,
		CreatedAt:      time.Now(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to save notification in service: %w", err)
	}
	return &n, nil
}

// ListNotifications returns the user's notifications newest first plus the
// unread count.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > maxNotificationPageSize {
		limit = maxNotificationPageSize
	}

	notifications, err := s.notificationRepo.ListNotifications(ctx, userID, params.UnreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications in service: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications in service: %w", err)
	}

	resp := &dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications[i] = dto.ToNotificationResponse(&notifications[i])
	}
	return resp, nil
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to mark notification read in service: %w", err)
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications read in service: %w", err)
	}
	return nil
}

// DeleteNotification removes one of the user's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	if err := s.notificationRepo.DeleteNotification(ctx, userID, notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete notification in service: %w", err)
	}
	return nil
}
