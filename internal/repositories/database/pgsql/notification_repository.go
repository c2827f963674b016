package pgsql

import (
	"context"
	"fmt"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
	"github.com/budgettrackr/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification rows.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, user_id, title, message, type, priority, action_url, is_read, created_at`

// ListNotifications returns the user's notifications newest first.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC, notification_id DESC`

	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	modelNotifs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var n models.Notification
		err := row.Scan(&n.NotificationID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.ActionURL, &n.IsRead, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}

	return mapping.ToDomainNotificationSlice(modelNotifs), nil
}

// CountUnread returns the number of unread notifications for the user.
func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// SaveNotification inserts a notification row.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	modelNotif := mapping.ToModelNotification(n)

	query := `
		INSERT INTO notifications (notification_id, user_id, title, message, type, priority, action_url, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelNotif.NotificationID,
		modelNotif.UserID,
		modelNotif.Title,
		modelNotif.Message,
		modelNotif.Type,
		modelNotif.Priority,
		modelNotif.ActionURL,
		modelNotif.IsRead,
		modelNotif.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// MarkRead flags a single notification as read.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND notification_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

// DeleteNotification removes one of the user's notifications.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	query := `DELETE FROM notifications WHERE user_id = $1 AND notification_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
