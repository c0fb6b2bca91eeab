package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxRate is the first value that no longer fits NUMERIC(10,2).
var maxRate = decimal.New(1, 8)

type exchangeRateService struct {
	BaseService
	registry *domain.CurrencyRegistry
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	book     rateBook
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(registry *domain.CurrencyRegistry, rateRepo portsrepo.ExchangeRateRepositoryFacade, opts ...ServiceOption) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService: newBaseService(opts...),
		registry:    registry,
		rateRepo:    rateRepo,
		book:        rateBook{registry: registry},
	}
}

// exchangeCurrency normalises code and rejects the base currency, which has no rate records.
func (s *exchangeRateService) exchangeCurrency(code string) (string, error) {
	code, err := s.registry.Normalize(code)
	if err != nil {
		return "", err
	}
	if s.registry.IsBase(code) {
		return "", fmt.Errorf("%w: %s is the base currency and has no exchange rate", apperrors.ErrValidation, code)
	}
	return code, nil
}

// SetRate appends a new rate record for a non-base currency.
func (s *exchangeRateService) SetRate(ctx context.Context, currencyCode string, rate decimal.Decimal, creatorUserID string) (*domain.ExchangeRate, error) {
	code, err := s.exchangeCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrInvalidRate)
	}
	if !domain.HasMoneyScale(rate) {
		return nil, fmt.Errorf("%w: rate must have at most %d decimal places", apperrors.ErrInvalidRate, domain.MoneyScale)
	}
	if rate.GreaterThanOrEqual(maxRate) {
		return nil, fmt.Errorf("%w: rate must be below %s", apperrors.ErrInvalidRate, maxRate)
	}

	record := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyCode:   code,
		Rate:           rate,
		CreatedAt:      s.now(),
		CreatedBy:      creatorUserID,
	}
	if err := s.rateRepo.SaveExchangeRate(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to save exchange rate for %s: %w", code, err)
	}

	s.metrics.RateSet(code)
	s.LogInfo(ctx, "Exchange rate set",
		slog.String("currency_code", code),
		slog.String("rate", rate.StringFixed(domain.MoneyScale)),
		slog.String("created_by", creatorUserID))
	s.publish(ctx, domain.LedgerEvent{
		EventType:    domain.EventRateSet,
		Amount:       rate,
		CurrencyCode: code,
		OccurredAt:   record.CreatedAt,
	})

	return &record, nil
}

func (s *exchangeRateService) RateOf(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	code, err := s.registry.Normalize(currencyCode)
	if err != nil {
		return decimal.Zero, err
	}
	return s.book.rateOf(ctx, s.rateRepo, code)
}

func (s *exchangeRateService) RateObject(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code, err := s.exchangeCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	latest, err := s.rateRepo.FindLatestExchangeRate(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRateNotSet, code)
		}
		return nil, fmt.Errorf("failed to load exchange rate for %s: %w", code, err)
	}
	return latest, nil
}

func (s *exchangeRateService) Convert(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	from, err := s.registry.Normalize(fromCode)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := s.registry.Normalize(toCode)
	if err != nil {
		return decimal.Zero, err
	}
	return s.book.convert(ctx, s.rateRepo, from, to)
}

func (s *exchangeRateService) ListRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	code, err := s.exchangeCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, code, pagination.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates for %s: %w", code, err)
	}
	return rates, nil
}
