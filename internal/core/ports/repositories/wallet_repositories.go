package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its ID.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByOwnerID retrieves the wallet owned by a user.
	FindWalletByOwnerID(ctx context.Context, ownerID string) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet. Returns apperrors.ErrDuplicate if the owner already has one.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// UpdateWalletAmount overwrites the balance of an existing wallet.
	UpdateWalletAmount(ctx context.Context, walletID string, amount decimal.Decimal, modifiedAt time.Time) error
}

// WalletTransactionSupport defines operations that only make sense inside a unit of work
type WalletTransactionSupport interface {
	// FindWalletsByIDsForUpdate selects wallets and locks them until the unit of work ends.
	// Rows are locked in ascending ID order. Missing IDs yield apperrors.ErrWalletNotFound.
	FindWalletsByIDsForUpdate(ctx context.Context, walletIDs []string) (map[string]domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletTransactionSupport
}
