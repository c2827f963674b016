package repositories

import (
	"context"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// ListTransactionsFilter narrows a transaction listing.
type ListTransactionsFilter struct {
	CategoryID *string
	Type       *domain.TransactionType
	From       *time.Time
	To         *time.Time

	// Cursor pagination: AfterDate/AfterID are decoded from the page token
	// and select rows strictly older than the cursor.
	Limit     int
	AfterDate *time.Time
	AfterID   *string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions newest first with the category
	// name joined in.
	ListTransactions(ctx context.Context, userID string, filter ListTransactionsFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
