package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/utils/pagination"
)

type transactionRepository struct {
	base
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	return r.write(func(s *state) error {
		if _, ok := s.wallets[txn.ToWalletID]; !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, txn.ToWalletID)
		}
		if txn.FromWalletID != nil {
			if _, ok := s.wallets[*txn.FromWalletID]; !ok {
				return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, *txn.FromWalletID)
			}
		}
		for _, existing := range s.transactions {
			if existing.TransactionID == txn.TransactionID {
				return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
			}
		}
		s.transactions = append(s.transactions, txn)
		return nil
	})
}

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	var found *domain.Transaction
	err := r.read(func(s *state) error {
		for i := range s.transactions {
			if s.transactions[i].TransactionID == transactionID {
				txn := s.transactions[i]
				found = &txn
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *transactionRepository) ListTransactionsByWalletID(_ context.Context, walletID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	var matched []domain.Transaction
	err := r.read(func(s *state) error {
		for _, txn := range s.transactions {
			if !txn.Involves(walletID) {
				continue
			}
			if filter.After != nil && txn.CreatedAt.Before(*filter.After) {
				continue
			}
			if filter.Before != nil && txn.CreatedAt.After(*filter.Before) {
				continue
			}
			matched = append(matched, txn)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sortTransactionsOldestFirst(matched)

	if filter.NextToken != nil && *filter.NextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(matched)
		for i, txn := range matched {
			if txn.CreatedAt.After(cursorAt) || (txn.CreatedAt.Equal(cursorAt) && txn.TransactionID > cursorID) {
				start = i
				break
			}
		}
		matched = matched[start:]
	}

	limit := pagination.ClampLimit(filter.Limit)
	var nextToken *string
	if len(matched) > limit {
		matched = matched[:limit]
		last := matched[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		nextToken = &token
	}
	return matched, nextToken, nil
}
