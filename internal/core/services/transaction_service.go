package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/budgettrackr/budget_tracker_app/internal/middleware"
	"github.com/budgettrackr/budget_tracker_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService provides business logic for transactions.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	notificationSvc portssvc.NotificationSvcFacade,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

const maxTransactionPageSize = 200

// validateCategory checks that a referenced category exists and belongs to the user.
func (s *TransactionService) validateCategory(ctx context.Context, userID string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, *categoryID)
		}
		return fmt.Errorf("failed to validate category: %w", err)
	}
	return nil
}

// CreateTransaction stores the transaction and drops a best-effort
// notification row about it. Notification failures are logged, not returned.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := s.validateCategory(ctx, userID, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		CategoryID:      req.CategoryID,
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		CurrencyCode:    strings.ToUpper(req.Currency),
		Description:     req.Description,
		Merchant:        req.Merchant,
		TransactionDate: req.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	title := "Expense recorded"
	if txn.Type == domain.Income {
		title = "Income recorded"
	}
	message := fmt.Sprintf("%s %s on %s", txn.Amount.String(), txn.CurrencyCode, txn.TransactionDate.Format("2006-01-02"))
	if _, err := s.notificationSvc.Notify(ctx, userID, title, message, "transaction", "low", ""); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to create transaction notification",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("error", err.Error()),
		)
	}

	return &txn, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *TransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	return txn, nil
}

// ListTransactions returns one page of transactions plus the cursor for the
// next page, empty when this page was the last.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	filter := portsrepo.ListTransactionsFilter{
		CategoryID: params.CategoryID,
		From:       params.From,
		To:         params.To,
		// Fetch one extra row to learn whether another page exists.
		Limit: limit + 1,
	}
	if params.Type != nil {
		t := domain.TransactionType(*params.Type)
		filter.Type = &t
	}
	if params.PageToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(params.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.AfterDate = &afterDate
		filter.AfterID = &afterID
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	var nextPageToken string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextPageToken = pagination.EncodeToken(last.TransactionDate, last.TransactionID)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions:  make([]dto.TransactionResponse, len(txns)),
		NextPageToken: nextPageToken,
	}
	for i := range txns {
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	return resp, nil
}

// UpdateTransaction applies the provided fields to an existing transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, userID, req.CategoryID); err != nil {
			return nil, err
		}
		txn.CategoryID = req.CategoryID
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Currency != nil {
		txn.CurrencyCode = strings.ToUpper(*req.Currency)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Merchant != nil {
		txn.Merchant = *req.Merchant
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	txn.UpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}
	return nil
}
