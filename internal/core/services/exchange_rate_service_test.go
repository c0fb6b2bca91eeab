package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateService(t *testing.T) portssvc.ExchangeRateSvcFacade {
	t.Helper()
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	store := memory.NewStore()
	return services.NewExchangeRateService(registry, store.Repositories().ExchangeRateRepo,
		services.WithClock(tickingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
}

func TestExchangeRateService_SetRateValidation(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		currency string
		rate     string
		wantErr  error
	}{
		{"base currency has no rate", "USD", "1", apperrors.ErrValidation},
		{"unsupported currency", "GBP", "1", apperrors.ErrInvalidCurrency},
		{"zero rate", "EUR", "0", apperrors.ErrInvalidRate},
		{"negative rate", "EUR", "-1.5", apperrors.ErrInvalidRate},
		{"too many decimals", "EUR", "1.234", apperrors.ErrInvalidRate},
		{"too large", "EUR", "100000000", apperrors.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetRate(ctx, tt.currency, dec(tt.rate), "admin")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	record, err := svc.SetRate(ctx, "eur", dec("99999999.99"), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.EUR, record.CurrencyCode)
	assert.Equal(t, "admin", record.CreatedBy)
	assert.NotEmpty(t, record.ExchangeRateID)
}

func TestExchangeRateService_RateOf(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	rate, err := svc.RateOf(ctx, domain.USD)
	require.NoError(t, err)
	assert.True(t, dec("1").Equal(rate))

	_, err = svc.RateOf(ctx, domain.CAD)
	assert.ErrorIs(t, err, apperrors.ErrRateNotSet)

	_, err = svc.RateOf(ctx, "JPY")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}

func TestExchangeRateService_LatestRateWins(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	_, err := svc.SetRate(ctx, domain.EUR, dec("2"), "admin")
	require.NoError(t, err)
	latest, err := svc.SetRate(ctx, domain.EUR, dec("3.5"), "admin")
	require.NoError(t, err)

	rate, err := svc.RateOf(ctx, domain.EUR)
	require.NoError(t, err)
	assert.True(t, dec("3.5").Equal(rate))

	record, err := svc.RateObject(ctx, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, latest.ExchangeRateID, record.ExchangeRateID)

	history, err := svc.ListRates(ctx, domain.EUR, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, dec("3.5").Equal(history[0].Rate), "history is newest first")
}

func TestExchangeRateService_LatestRateWinsOutOfNumericOrder(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	for _, r := range []string{"5", "2", "3"} {
		_, err := svc.SetRate(ctx, domain.CAD, dec(r), "admin")
		require.NoError(t, err)
	}

	rate, err := svc.RateOf(ctx, domain.CAD)
	require.NoError(t, err)
	assert.True(t, dec("3").Equal(rate), "got %s", rate)

	history, err := svc.ListRates(ctx, domain.CAD, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, want := range []string{"3", "2", "5"} {
		assert.True(t, dec(want).Equal(history[i].Rate), "history[%d] = %s", i, history[i].Rate)
	}
}

func TestExchangeRateService_RateObject(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	_, err := svc.RateObject(ctx, domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RateObject(ctx, domain.CNY)
	assert.ErrorIs(t, err, apperrors.ErrRateNotSet)

	_, err = svc.ListRates(ctx, domain.USD, 10)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExchangeRateService_Convert(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	_, err := svc.SetRate(ctx, domain.EUR, dec("2"), "admin")
	require.NoError(t, err)
	_, err = svc.SetRate(ctx, domain.CNY, dec("7.25"), "admin")
	require.NoError(t, err)
	_, err = svc.SetRate(ctx, domain.CAD, dec("1.37"), "admin")
	require.NoError(t, err)

	factor, err := svc.Convert(ctx, domain.USD, domain.EUR)
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(factor))

	factor, err = svc.Convert(ctx, domain.EUR, domain.USD)
	require.NoError(t, err)
	assert.True(t, dec("0.5").Equal(factor))

	factor, err = svc.Convert(ctx, domain.EUR, domain.EUR)
	require.NoError(t, err)
	assert.True(t, dec("1").Equal(factor))

	// Converting through any intermediate currency gives the same money result.
	codes := []string{domain.USD, domain.EUR, domain.CNY, domain.CAD}
	amount := dec("1234.56")
	for _, a := range codes {
		for _, b := range codes {
			for _, c := range codes {
				ab, err := svc.Convert(ctx, a, b)
				require.NoError(t, err)
				bc, err := svc.Convert(ctx, b, c)
				require.NoError(t, err)
				ac, err := svc.Convert(ctx, a, c)
				require.NoError(t, err)

				direct := domain.RoundMoney(amount.Mul(ac))
				chained := domain.RoundMoney(amount.Mul(ab).Mul(bc))
				assert.True(t, direct.Equal(chained), "%s->%s->%s: %s != %s", a, b, c, chained, direct)
			}
		}
	}
}

func TestExchangeRateService_ConvertWithoutRate(t *testing.T) {
	svc := newRateService(t)
	ctx := context.Background()

	_, err := svc.Convert(ctx, domain.USD, domain.CAD)
	assert.ErrorIs(t, err, apperrors.ErrRateNotSet)

	_, err = svc.Convert(ctx, domain.CAD, domain.CAD)
	assert.ErrorIs(t, err, apperrors.ErrRateNotSet, "no shortcut for identical currencies")

	_, err = svc.Convert(ctx, "usd", "xyz")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}
