package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc defines the balance-changing operations. Each call is atomic.
type LedgerSvc interface {
	// Charge adds money from outside the ledger to a wallet.
	// amount is in currencyCode and is converted to the wallet's currency.
	Charge(ctx context.Context, ref domain.WalletRef, amount decimal.Decimal, currencyCode string) (*domain.Wallet, error)

	// MakePayment moves amount, stated in currencyCode, from one wallet to another
	// and records the transfer.
	MakePayment(ctx context.Context, from, to domain.WalletRef, amount decimal.Decimal, currencyCode string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations for recorded transfers
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListWalletTransactions returns a page of a wallet's history, oldest first.
	ListWalletTransactions(ctx context.Context, ref domain.WalletRef, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
}
