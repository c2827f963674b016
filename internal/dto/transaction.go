package dto

import (
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the body of POST /transactions.
type CreateTransactionRequest struct {
	CategoryID      *string         `json:"category_id"`
	Type            string          `json:"type" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Currency        string          `json:"currency" binding:"required,currencycode"`
	Description     string          `json:"description"`
	Merchant        string          `json:"merchant"`
	TransactionDate time.Time       `json:"transaction_date" binding:"required"`
}

// UpdateTransactionRequest defines the body of PUT /transactions/:id.
// Pointers distinguish omitted fields from zero values.
type UpdateTransactionRequest struct {
	CategoryID      *string          `json:"category_id"`
	Type            *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency" binding:"omitempty,currencycode"`
	Description     *string          `json:"description"`
	Merchant        *string          `json:"merchant"`
	TransactionDate *time.Time       `json:"transaction_date"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	CategoryID *string    `form:"category_id"`
	Type       *string    `form:"type" binding:"omitempty,oneof=income expense"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int        `form:"limit,default=50"`
	PageToken  string     `form:"page_token"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	CategoryID      *string         `json:"categoryID,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	Merchant        string          `json:"merchant"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page, empty when this is the last page.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		CategoryID:      txn.CategoryID,
		CategoryName:    txn.CategoryName,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		Currency:        txn.CurrencyCode,
		Description:     txn.Description,
		Merchant:        txn.Merchant,
		TransactionDate: txn.TransactionDate,
		CreatedAt:       txn.CreatedAt,
	}
}
