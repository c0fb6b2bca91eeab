package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestExchangeRate returns the most recently created rate for a currency.
	// It returns apperrors.ErrNotFound when no rate was ever recorded.
	FindLatestExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates returns the rate history for a currency, newest first.
	ListExchangeRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate appends a new rate record. Existing records are never modified.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
