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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `user_id, code, name, rate_to_inr, is_default, created_at, updated_at`

func scanCurrencyRow(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.UserID,
		&c.Code,
		&c.Name,
		&c.RateToINR,
		&c.IsDefault,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// FindCurrencyByCode retrieves one of the user's currencies by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE user_id = $1 AND code = $2;
	`
	modelCurr, err := scanCurrencyRow(r.Pool.QueryRow(ctx, query, userID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all of the user's currencies, default first.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE user_id = $1
		ORDER BY is_default DESC, code;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrencyRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// UpsertCurrency inserts or updates a currency. When clearDefaults is true,
// default flags on the user's other currencies are cleared in the same
// transaction, so the single-default invariant holds at every commit point.
func (r *PgxCurrencyRepository) UpsertCurrency(ctx context.Context, currency domain.Currency, clearDefaults bool) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if clearDefaults {
		clearQuery := `
			UPDATE currencies
			SET is_default = FALSE, updated_at = $3
			WHERE user_id = $1 AND is_default AND code <> $2;
		`
		if _, err := tx.Exec(ctx, clearQuery, modelCurr.UserID, modelCurr.Code, modelCurr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to clear default currencies: %w", err)
		}
	}

	upsertQuery := `
		INSERT INTO currencies (user_id, code, name, rate_to_inr, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, code) DO UPDATE SET
			name = EXCLUDED.name,
			rate_to_inr = EXCLUDED.rate_to_inr,
			is_default = EXCLUDED.is_default,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + currencyColumns + `;
	`
	saved, err := scanCurrencyRow(tx.QueryRow(ctx, upsertQuery,
		modelCurr.UserID,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.RateToINR,
		modelCurr.IsDefault,
		modelCurr.CreatedAt,
		modelCurr.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert currency %s: %w", modelCurr.Code, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// SetDefaultCurrency clears every default flag for the user and sets the flag
// on the currency matching code. Both steps run in one transaction: when the
// code does not exist the transaction rolls back and the previous default
// survives untouched.
func (r *PgxCurrencyRepository) SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	clearQuery := `
		UPDATE currencies
		SET is_default = FALSE, updated_at = now()
		WHERE user_id = $1 AND is_default;
	`
	if _, err := tx.Exec(ctx, clearQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to clear default currencies: %w", err)
	}

	setQuery := `
		UPDATE currencies
		SET is_default = TRUE, updated_at = now()
		WHERE user_id = $1 AND code = $2
		RETURNING ` + currencyColumns + `;
	`
	saved, err := scanCurrencyRow(tx.QueryRow(ctx, setQuery, userID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set default currency %s: %w", code, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// DeleteCurrency removes the currency and returns the deleted row. The target
// row is locked first so the default check and the delete see the same state:
// deleting the default while other currencies remain returns ErrConflict.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE user_id = $1 AND code = $2
		FOR UPDATE;
	`
	target, err := scanCurrencyRow(tx.QueryRow(ctx, lockQuery, userID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock currency %s for delete: %w", code, err)
	}

	if target.IsDefault {
		var others int
		countQuery := `SELECT COUNT(*) FROM currencies WHERE user_id = $1 AND code <> $2;`
		if err := tx.QueryRow(ctx, countQuery, userID, code).Scan(&others); err != nil {
			return nil, fmt.Errorf("failed to count remaining currencies: %w", err)
		}
		if others > 0 {
			return nil, fmt.Errorf("cannot delete default currency %s while %d others remain: %w", code, others, apperrors.ErrConflict)
		}
	}

	deleteQuery := `DELETE FROM currencies WHERE user_id = $1 AND code = $2;`
	if _, err := tx.Exec(ctx, deleteQuery, userID, code); err != nil {
		return nil, fmt.Errorf("failed to delete currency %s: %w", code, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(target)
	return &domainCurr, nil
}

// SeedCurrencies inserts the given currencies in one transaction, skipping
// codes the user already has.
func (r *PgxCurrencyRepository) SeedCurrencies(ctx context.Context, currencies []domain.Currency) error {
	if len(currencies) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	insertQuery := `
		INSERT INTO currencies (user_id, code, name, rate_to_inr, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, code) DO NOTHING;
	`
	for _, currency := range currencies {
		modelCurr := mapping.ToModelCurrency(currency)
		if _, err := tx.Exec(ctx, insertQuery,
			modelCurr.UserID,
			modelCurr.Code,
			modelCurr.Name,
			modelCurr.RateToINR,
			modelCurr.IsDefault,
			modelCurr.CreatedAt,
			modelCurr.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", modelCurr.Code, err)
		}
	}

	return r.Commit(ctx, tx)
}
