package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgettrackr/budget_tracker_app/internal/apperrors"
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgettrackr/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// popularCurrency is one entry of the starter set inserted on first use.
type popularCurrency struct {
	code      string
	name      string
	rateToINR string
	isDefault bool
}

// popularCurrencies is the starter set every new user begins with. Rates are
// INR per one unit of the currency and are only a usable baseline; users are
// expected to adjust them.
var popularCurrencies = []popularCurrency{
	{"INR", "Indian Rupee", "1", true},
	{"USD", "US Dollar", "83", false},
	{"EUR", "Euro", "90", false},
	{"GBP", "British Pound", "105", false},
	{"JPY", "Japanese Yen", "0.55", false},
	{"CAD", "Canadian Dollar", "61", false},
	{"AUD", "Australian Dollar", "55", false},
	{"CNY", "Chinese Yuan", "11.5", false},
	{"SGD", "Singapore Dollar", "62", false},
	{"AED", "UAE Dirham", "22.6", false},
}

// CurrencyService provides business logic for the per-user currency registry.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryWithTx
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryWithTx) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// normalizeCurrencyCode uppercases and validates a 3-letter code.
func normalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code must be exactly 3 letters", apperrors.ErrValidation)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code must contain only letters", apperrors.ErrValidation)
		}
	}
	return code, nil
}

// ListCurrencies returns the user's currencies, default first. A user with no
// currencies yet gets the popular starter set seeded before the listing.
func (s *CurrencyService) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if len(currencies) > 0 {
		return currencies, nil
	}

	if err := s.currencyRepo.SeedCurrencies(ctx, s.seedSet(userID)); err != nil {
		return nil, fmt.Errorf("failed to seed starter currencies: %w", err)
	}

	currencies, err = s.currencyRepo.ListCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies after seeding: %w", err)
	}
	return currencies, nil
}

func (s *CurrencyService) seedSet(userID string) []domain.Currency {
	now := time.Now()
	seed := make([]domain.Currency, len(popularCurrencies))
	for i, p := range popularCurrencies {
		seed[i] = domain.Currency{
			UserID:    userID,
			Code:      p.code,
			Name:      p.name,
			RateToINR: decimal.RequireFromString(p.rateToINR),
			IsDefault: p.isDefault,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	}
	return seed
}

// GetCurrencyByCode retrieves one of the user's currencies.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, userID, code string) (*domain.Currency, error) {
	code, err := normalizeCurrencyCode(code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, userID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ConvertAmount converts amount from one currency to another through the INR
// base: amount * fromRate is the INR value, divided by toRate for the result.
// Both codes must be present in currencies with positive rates.
func (s *CurrencyService) ConvertAmount(amount decimal.Decimal, fromCode, toCode string, currencies []domain.Currency) (decimal.Decimal, error) {
	fromCode, err := normalizeCurrencyCode(fromCode)
	if err != nil {
		return decimal.Zero, err
	}
	toCode, err = normalizeCurrencyCode(toCode)
	if err != nil {
		return decimal.Zero, err
	}

	var from, to *domain.Currency
	for i := range currencies {
		switch currencies[i].Code {
		case fromCode:
			from = &currencies[i]
		case toCode:
			to = &currencies[i]
		}
	}
	if from == nil {
		return decimal.Zero, fmt.Errorf("currency %s: %w", fromCode, apperrors.ErrNotFound)
	}
	if to == nil {
		return decimal.Zero, fmt.Errorf("currency %s: %w", toCode, apperrors.ErrNotFound)
	}

	if from.RateToINR.LessThanOrEqual(decimal.Zero) || to.RateToINR.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: conversion rates must be positive", apperrors.ErrValidation)
	}

	if fromCode == toCode {
		return amount, nil
	}

	amountInINR := amount.Mul(from.RateToINR)
	return amountInINR.Div(to.RateToINR), nil
}

// AddOrUpsertCurrency creates a currency for the user. When the code already
// exists and force is unset, the stored row is returned untouched and the bool
// result is false. With force set, the existing row is overwritten. Setting
// is_default clears the flag on every other currency in the same transaction.
func (s *CurrencyService) AddOrUpsertCurrency(ctx context.Context, userID string, req dto.CreateCurrencyRequest) (*domain.Currency, bool, error) {
	code, err := normalizeCurrencyCode(req.Code)
	if err != nil {
		return nil, false, err
	}
	if req.RateToINR.LessThanOrEqual(decimal.Zero) {
		return nil, false, fmt.Errorf("%w: rate_to_inr must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, false, fmt.Errorf("%w: currency name is required", apperrors.ErrValidation)
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, userID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check existing currency: %w", err)
	}

	if existing != nil && !req.Force {
		return existing, false, nil
	}

	now := time.Now()
	currency := domain.Currency{
		UserID:    userID,
		Code:      code,
		Name:      strings.TrimSpace(req.Name),
		RateToINR: req.RateToINR,
		IsDefault: req.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if existing != nil {
		currency.CreatedAt = existing.CreatedAt
		// Force without an explicit default keeps the row's current flag so a
		// rate update cannot silently drop the user's default.
		if !req.IsDefault {
			currency.IsDefault = existing.IsDefault
		}
	}

	saved, err := s.currencyRepo.UpsertCurrency(ctx, currency, currency.IsDefault)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert currency in service: %w", err)
	}
	return saved, true, nil
}

// SetDefaultCurrency makes the named currency the user's single default. The
// clear and set happen in one repository transaction; an unknown code leaves
// the previous default in place and returns ErrNotFound.
func (s *CurrencyService) SetDefaultCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	code, err := normalizeCurrencyCode(code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.SetDefaultCurrency(ctx, userID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set default currency in service: %w", err)
	}
	return currency, nil
}

// DeleteCurrency removes a currency and returns the deleted row. Deleting the
// default while other currencies remain fails with ErrConflict; the last
// remaining currency may be deleted even when it is the default.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, userID, code string) (*domain.Currency, error) {
	code, err := normalizeCurrencyCode(code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.DeleteCurrency(ctx, userID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete currency in service: %w", err)
	}
	return currency, nil
}
