package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	registry   *domain.CurrencyRegistry
	walletRepo portsrepo.WalletRepositoryFacade
	rateRepo   portsrepo.ExchangeRateReader
	book       rateBook
}

// NewWalletService creates a new wallet service.
func NewWalletService(registry *domain.CurrencyRegistry, walletRepo portsrepo.WalletRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, opts ...ServiceOption) portssvc.WalletSvcFacade {
	return &walletService{
		BaseService: newBaseService(opts...),
		registry:    registry,
		walletRepo:  walletRepo,
		rateRepo:    rateRepo,
		book:        rateBook{registry: registry},
	}
}

// resolveWallet maps a reference to a wallet using the given reader.
// A *Wallet is returned as is; callers that mutate must re-read it under lock.
func resolveWallet(ctx context.Context, wallets portsrepo.WalletReader, ref domain.WalletRef) (*domain.Wallet, error) {
	switch r := ref.(type) {
	case *domain.Wallet:
		if r == nil {
			return nil, fmt.Errorf("%w: nil wallet", apperrors.ErrWalletNotFound)
		}
		return r, nil
	case domain.WalletID:
		return wallets.FindWalletByID(ctx, string(r))
	case domain.UserID:
		return wallets.FindWalletByOwnerID(ctx, string(r))
	default:
		return nil, fmt.Errorf("%w: unsupported wallet reference %T", apperrors.ErrWalletNotFound, ref)
	}
}

func (s *walletService) ResolveWallet(ctx context.Context, ref domain.WalletRef) (*domain.Wallet, error) {
	return resolveWallet(ctx, s.walletRepo, ref)
}

func (s *walletService) BalanceIn(ctx context.Context, ref domain.WalletRef, currencyCode string) (decimal.Decimal, error) {
	code, err := s.registry.Normalize(currencyCode)
	if err != nil {
		return decimal.Zero, err
	}

	wallet, err := resolveWallet(ctx, s.walletRepo, ref)
	if err != nil {
		return decimal.Zero, err
	}

	factor, err := s.book.convert(ctx, s.rateRepo, wallet.CurrencyCode, code)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.RoundMoney(wallet.Amount.Mul(factor)), nil
}

func (s *walletService) CreateWallet(ctx context.Context, ownerID string, currencyCode string) (*domain.Wallet, error) {
	wallet, err := newWallet(s.registry, ownerID, currencyCode, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.walletRepo.SaveWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to create wallet", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create wallet for user %s: %w", ownerID, err)
	}

	s.LogInfo(ctx, "Wallet created", slog.String("wallet_id", wallet.WalletID), slog.String("owner_id", ownerID))
	return wallet, nil
}

// newWallet builds an empty wallet in a supported currency.
func newWallet(registry *domain.CurrencyRegistry, ownerID, currencyCode string, now time.Time) (*domain.Wallet, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: wallet owner is required", apperrors.ErrValidation)
	}
	code, err := registry.Normalize(currencyCode)
	if err != nil {
		return nil, err
	}
	return &domain.Wallet{
		WalletID:     uuid.NewString(),
		OwnerID:      ownerID,
		CurrencyCode: code,
		Amount:       decimal.Zero,
		Timestamps: domain.Timestamps{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}, nil
}
