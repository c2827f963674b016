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

type PgxSubscriptionRepository struct {
	BaseRepository
}

// newPgxSubscriptionRepository creates a new repository for subscription data.
func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

const subscriptionColumns = `subscription_id, user_id, name, amount, currency, billing_cycle, next_due_date, active, created_at, updated_at`

func scanSubscriptionRow(row pgx.Row) (models.Subscription, error) {
	var s models.Subscription
	err := row.Scan(
		&s.SubscriptionID,
		&s.UserID,
		&s.Name,
		&s.Amount,
		&s.CurrencyCode,
		&s.BillingCycle,
		&s.NextDueDate,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// FindSubscriptionByID retrieves one of the user's subscriptions.
func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1 AND subscription_id = $2;
	`
	modelSub, err := scanSubscriptionRow(r.Pool.QueryRow(ctx, query, userID, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription %s: %w", subscriptionID, err)
	}

	domainSub := mapping.ToDomainSubscription(modelSub)
	return &domainSub, nil
}

// ListSubscriptions retrieves all of the user's subscriptions, next due first.
func (r *PgxSubscriptionRepository) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY next_due_date, name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	modelSubs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Subscription, error) {
		return scanSubscriptionRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan subscriptions: %w", err)
	}

	return mapping.ToDomainSubscriptionSlice(modelSubs), nil
}

// SaveSubscription inserts a new subscription.
func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	modelSub := mapping.ToModelSubscription(sub)

	query := `
		INSERT INTO subscriptions (subscription_id, user_id, name, amount, currency, billing_cycle, next_due_date, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSub.SubscriptionID,
		modelSub.UserID,
		modelSub.Name,
		modelSub.Amount,
		modelSub.CurrencyCode,
		modelSub.BillingCycle,
		modelSub.NextDueDate,
		modelSub.Active,
		modelSub.CreatedAt,
		modelSub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save subscription %s: %w", modelSub.SubscriptionID, err)
	}
	return nil
}

// UpdateSubscription updates the mutable fields of an existing subscription.
func (r *PgxSubscriptionRepository) UpdateSubscription(ctx context.Context, sub domain.Subscription) error {
	modelSub := mapping.ToModelSubscription(sub)

	query := `
		UPDATE subscriptions
		SET name = $3, amount = $4, currency = $5, billing_cycle = $6, next_due_date = $7, active = $8, updated_at = $9
		WHERE user_id = $1 AND subscription_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelSub.UserID,
		modelSub.SubscriptionID,
		modelSub.Name,
		modelSub.Amount,
		modelSub.CurrencyCode,
		modelSub.BillingCycle,
		modelSub.NextDueDate,
		modelSub.Active,
		modelSub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", modelSub.SubscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSubscription removes one of the user's subscriptions.
func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	query := `DELETE FROM subscriptions WHERE user_id = $1 AND subscription_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", subscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
