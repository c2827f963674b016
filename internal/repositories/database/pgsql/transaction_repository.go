package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgettrackr/budget_tracker_app/internal/models"
	"github.com/budgettrackr/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.user_id, t.category_id, c.name AS category_name, t.type, t.amount, t.currency, t.description, t.merchant, t.transaction_date, t.created_at, t.updated_at`

func scanTransactionRow(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.UserID,
		&t.CategoryID,
		&t.CategoryName,
		&t.Type,
		&t.Amount,
		&t.CurrencyCode,
		&t.Description,
		&t.Merchant,
		&t.TransactionDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// FindTransactionByID retrieves one of the user's transactions with the
// category name joined in.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1 AND t.transaction_id = $2;
	`
	modelTxn, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions returns the user's transactions newest first, applying the
// optional filters and the keyset cursor.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1`)

	args := []any{userID}
	addArg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.CategoryID != nil {
		sb.WriteString(` AND t.category_id = ` + addArg(*filter.CategoryID))
	}
	if filter.Type != nil {
		sb.WriteString(` AND t.type = ` + addArg(string(*filter.Type)))
	}
	if filter.From != nil {
		sb.WriteString(` AND t.transaction_date >= ` + addArg(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(` AND t.transaction_date <= ` + addArg(*filter.To))
	}
	if filter.AfterDate != nil && filter.AfterID != nil {
		// Keyset cursor: strictly older than the last row of the previous page,
		// with transaction_id as the tiebreaker for identical dates.
		datePH := addArg(*filter.AfterDate)
		idPH := addArg(*filter.AfterID)
		sb.WriteString(` AND (t.transaction_date, t.transaction_id) < (` + datePH + `, ` + idPH + `)`)
	}

	sb.WriteString(` ORDER BY t.transaction_date DESC, t.transaction_id DESC`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ` + addArg(filter.Limit))
	}
	sb.WriteString(`;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransactionRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, user_id, category_id, type, amount, currency, description, merchant, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.CategoryID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.CurrencyCode,
		modelTxn.Description,
		modelTxn.Merchant,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// UpdateTransaction updates the mutable fields of an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET category_id = $3, type = $4, amount = $5, currency = $6, description = $7, merchant = $8, transaction_date = $9, updated_at = $10
		WHERE user_id = $1 AND transaction_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTxn.UserID,
		modelTxn.TransactionID,
		modelTxn.CategoryID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.CurrencyCode,
		modelTxn.Description,
		modelTxn.Merchant,
		modelTxn.TransactionDate,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes one of the user's transactions.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE user_id = $1 AND transaction_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
