package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for the supported currency set
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported currency, flagging the base one.
	ListCurrencies(ctx context.Context) []domain.Currency

	// ValidateCurrency normalises a code and fails with apperrors.ErrInvalidCurrency if unsupported.
	ValidateCurrency(ctx context.Context, code string) (string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// RateOf returns how many units of currency one unit of the base currency buys.
	// The base currency always yields exactly 1.
	RateOf(ctx context.Context, currencyCode string) (decimal.Decimal, error)

	// RateObject returns the latest rate record. The base currency has none and is rejected.
	RateObject(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// Convert returns the factor that turns an amount in from into an amount in to.
	Convert(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)

	// ListRates returns the recorded history for a currency, newest first.
	ListRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// SetRate appends a new rate record for a non-base currency.
	SetRate(ctx context.Context, currencyCode string, rate decimal.Decimal, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
