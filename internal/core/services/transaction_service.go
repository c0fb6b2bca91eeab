package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/utils/pagination"
)

type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionReader
	walletRepo portsrepo.WalletReader
}

// NewTransactionService creates a read-only service over recorded transfers.
func NewTransactionService(txnRepo portsrepo.TransactionReader, walletRepo portsrepo.WalletReader, opts ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(opts...),
		txnRepo:     txnRepo,
		walletRepo:  walletRepo,
	}
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListWalletTransactions(ctx context.Context, ref domain.WalletRef, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	if filter.Before != nil && filter.After != nil && filter.Before.Before(*filter.After) {
		return nil, nil, fmt.Errorf("%w: 'before' must not be earlier than 'after'", apperrors.ErrValidation)
	}
	filter.Limit = pagination.ClampLimit(filter.Limit)

	wallet, err := resolveWallet(ctx, s.walletRepo, ref)
	if err != nil {
		return nil, nil, err
	}

	txns, next, err := s.txnRepo.ListTransactionsByWalletID(ctx, wallet.WalletID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for wallet %s: %w", wallet.WalletID, err)
	}
	return txns, next, nil
}
