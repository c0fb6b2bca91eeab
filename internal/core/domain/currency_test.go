package domain_test

import (
	"testing"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyRegistry(t *testing.T) {
	r, err := domain.NewCurrencyRegistry("usd", []string{"usd", "EUR", " cad ", "EUR"})
	require.NoError(t, err)

	assert.Equal(t, "USD", r.Base())
	assert.Equal(t, []string{"USD", "EUR", "CAD"}, r.Supported())
	assert.Equal(t, []string{"EUR", "CAD"}, r.ExchangeCurrencies())
	assert.True(t, r.IsBase("USD"))
	assert.False(t, r.IsBase("EUR"))
}

func TestNewCurrencyRegistry_Errors(t *testing.T) {
	_, err := domain.NewCurrencyRegistry("USD", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCurrencyRegistry("GBP", []string{"USD", "EUR"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCurrencyRegistry("USD", []string{"USD", "EURO"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCurrencyRegistry_Validate(t *testing.T) {
	r := domain.MustCurrencyRegistry(domain.DefaultBaseCurrency, domain.DefaultCurrencies())

	for _, code := range domain.DefaultCurrencies() {
		assert.NoError(t, r.Validate(code), code)
	}

	err := r.Validate("RUR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Validate is exact; Normalize upper-cases first.
	assert.ErrorIs(t, r.Validate("eur"), apperrors.ErrInvalidCurrency)
	code, err := r.Normalize(" eur")
	assert.NoError(t, err)
	assert.Equal(t, "EUR", code)
}

func TestCurrencyRegistry_AlternateSet(t *testing.T) {
	r := domain.MustCurrencyRegistry("EUR", []string{"EUR", "GBP"})

	assert.NoError(t, r.Validate("GBP"))
	assert.ErrorIs(t, r.Validate("USD"), apperrors.ErrInvalidCurrency)
	assert.Equal(t, []domain.Currency{
		{CurrencyCode: "EUR", IsBase: true},
		{CurrencyCode: "GBP", IsBase: false},
	}, r.Currencies())
}
