package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	registry *domain.CurrencyRegistry
}

// NewCurrencyService creates a service over the configured currency set.
func NewCurrencyService(registry *domain.CurrencyRegistry, opts ...ServiceOption) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService: newBaseService(opts...),
		registry:    registry,
	}
}

func (s *currencyService) ListCurrencies(_ context.Context) []domain.Currency {
	return s.registry.Currencies()
}

func (s *currencyService) ValidateCurrency(ctx context.Context, code string) (string, error) {
	normalized, err := s.registry.Normalize(code)
	if err != nil {
		s.LogDebug(ctx, "Rejected unsupported currency", "currency_code", code)
		return "", err
	}
	return normalized, nil
}
