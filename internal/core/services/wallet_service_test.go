package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletService(t *testing.T) {
	ctx := context.Background()
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	store := memory.NewStore()
	repos := store.Repositories()
	rates := services.NewExchangeRateService(registry, repos.ExchangeRateRepo)
	wallets := services.NewWalletService(registry, repos.WalletRepo, repos.ExchangeRateRepo)

	wallet, err := wallets.CreateWallet(ctx, "user-1", "eur")
	require.NoError(t, err)
	assert.Equal(t, domain.EUR, wallet.CurrencyCode)
	assert.True(t, wallet.Amount.IsZero())

	t.Run("one wallet per user", func(t *testing.T) {
		_, err := wallets.CreateWallet(ctx, "user-1", domain.USD)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		_, err := wallets.CreateWallet(ctx, "user-2", "BTC")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	})

	t.Run("resolves every reference kind", func(t *testing.T) {
		byID, err := wallets.ResolveWallet(ctx, domain.WalletID(wallet.WalletID))
		require.NoError(t, err)
		byOwner, err := wallets.ResolveWallet(ctx, domain.UserID("user-1"))
		require.NoError(t, err)
		byValue, err := wallets.ResolveWallet(ctx, wallet)
		require.NoError(t, err)

		assert.Equal(t, wallet.WalletID, byID.WalletID)
		assert.Equal(t, wallet.WalletID, byOwner.WalletID)
		assert.Same(t, wallet, byValue)

		_, err = wallets.ResolveWallet(ctx, domain.UserID("nobody"))
		assert.ErrorIs(t, err, apperrors.ErrWalletNotFound)
		_, err = wallets.ResolveWallet(ctx, (*domain.Wallet)(nil))
		assert.ErrorIs(t, err, apperrors.ErrWalletNotFound)
	})

	t.Run("balance in another currency", func(t *testing.T) {
		_, err := rates.SetRate(ctx, domain.EUR, dec("3"), "admin")
		require.NoError(t, err)
		require.NoError(t, repos.WalletRepo.UpdateWalletAmount(ctx, wallet.WalletID, dec("10"), wallet.CreatedAt))

		balance, err := wallets.BalanceIn(ctx, domain.UserID("user-1"), domain.USD)
		require.NoError(t, err)
		assert.Equal(t, "3.33", balance.StringFixed(2))

		balance, err = wallets.BalanceIn(ctx, domain.UserID("user-1"), domain.EUR)
		require.NoError(t, err)
		assert.Equal(t, "10.00", balance.StringFixed(2))

		_, err = wallets.BalanceIn(ctx, domain.UserID("user-1"), domain.CAD)
		assert.ErrorIs(t, err, apperrors.ErrRateNotSet)
	})
}

func TestTransactionService_ListRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	history := services.NewTransactionService(repos.TransactionRepo, repos.WalletRepo)

	before := testEpoch
	after := testEpoch.Add(1)
	_, _, err := history.ListWalletTransactions(ctx, domain.WalletID("w"), domain.TransactionFilter{Before: &before, After: &after})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = history.ListWalletTransactions(ctx, domain.WalletID("w"), domain.TransactionFilter{})
	assert.ErrorIs(t, err, apperrors.ErrWalletNotFound)

	_, err = history.GetTransaction(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyService(t *testing.T) {
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	svc := services.NewCurrencyService(registry)
	ctx := context.Background()

	currencies := svc.ListCurrencies(ctx)
	require.Len(t, currencies, 4)
	assert.Equal(t, domain.Currency{CurrencyCode: domain.USD, IsBase: true}, currencies[0])

	code, err := svc.ValidateCurrency(ctx, " cny ")
	require.NoError(t, err)
	assert.Equal(t, domain.CNY, code)

	_, err = svc.ValidateCurrency(ctx, "EURO")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}
