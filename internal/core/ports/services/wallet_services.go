package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations for wallets
type WalletReaderSvc interface {
	// ResolveWallet turns a wallet, wallet ID or user ID into the stored wallet.
	ResolveWallet(ctx context.Context, ref domain.WalletRef) (*domain.Wallet, error)

	// BalanceIn returns the wallet balance converted to currencyCode, rounded to two places.
	BalanceIn(ctx context.Context, ref domain.WalletRef, currencyCode string) (decimal.Decimal, error)
}

// WalletWriterSvc defines write operations for wallets
type WalletWriterSvc interface {
	// CreateWallet opens an empty wallet for a user.
	CreateWallet(ctx context.Context, ownerID string, currencyCode string) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
