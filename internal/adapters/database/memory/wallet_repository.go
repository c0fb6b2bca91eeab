package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type walletRepository struct {
	base
}

var _ portsrepo.WalletRepositoryFacade = (*walletRepository)(nil)

func (r *walletRepository) SaveWallet(_ context.Context, wallet domain.Wallet) error {
	return r.write(func(s *state) error {
		if _, exists := s.wallets[wallet.WalletID]; exists {
			return fmt.Errorf("%w: wallet %s", apperrors.ErrDuplicate, wallet.WalletID)
		}
		if _, exists := s.walletByOwner[wallet.OwnerID]; exists {
			return fmt.Errorf("%w: user %s already owns a wallet", apperrors.ErrDuplicate, wallet.OwnerID)
		}
		s.wallets[wallet.WalletID] = wallet
		s.walletByOwner[wallet.OwnerID] = wallet.WalletID
		return nil
	})
}

func (r *walletRepository) UpdateWalletAmount(_ context.Context, walletID string, amount decimal.Decimal, modifiedAt time.Time) error {
	return r.write(func(s *state) error {
		wallet, ok := s.wallets[walletID]
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, walletID)
		}
		wallet.Amount = amount
		wallet.ModifiedAt = modifiedAt
		s.wallets[walletID] = wallet
		return nil
	})
}

func (r *walletRepository) FindWalletByID(_ context.Context, walletID string) (*domain.Wallet, error) {
	var found *domain.Wallet
	err := r.read(func(s *state) error {
		if wallet, ok := s.wallets[walletID]; ok {
			found = &wallet
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, walletID)
	}
	return found, nil
}

func (r *walletRepository) FindWalletByOwnerID(_ context.Context, ownerID string) (*domain.Wallet, error) {
	var found *domain.Wallet
	err := r.read(func(s *state) error {
		if id, ok := s.walletByOwner[ownerID]; ok {
			wallet := s.wallets[id]
			found = &wallet
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no wallet for user %s", apperrors.ErrWalletNotFound, ownerID)
	}
	return found, nil
}

// FindWalletsByIDsForUpdate needs no row locks here: a unit of work already
// holds the store's write lock for its whole duration.
func (r *walletRepository) FindWalletsByIDsForUpdate(_ context.Context, walletIDs []string) (map[string]domain.Wallet, error) {
	ids := make([]string, len(walletIDs))
	copy(ids, walletIDs)
	sort.Strings(ids)

	out := make(map[string]domain.Wallet, len(ids))
	err := r.read(func(s *state) error {
		for _, id := range ids {
			wallet, ok := s.wallets[id]
			if !ok {
				return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, id)
			}
			out[id] = wallet
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
