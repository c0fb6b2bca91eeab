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

// Operation names used for metrics.
const (
	operationCharge      = "charge"
	operationMakePayment = "make_payment"
)

type ledgerService struct {
	BaseService
	registry *domain.CurrencyRegistry
	uow      portsrepo.UnitOfWork
	book     rateBook
}

// NewLedgerService creates the service that moves money between and into wallets.
// Every operation runs inside a single unit of work.
func NewLedgerService(registry *domain.CurrencyRegistry, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.LedgerSvc {
	return &ledgerService{
		BaseService: newBaseService(opts...),
		registry:    registry,
		uow:         uow,
		book:        rateBook{registry: registry},
	}
}

// lockWallets resolves refs and returns fresh, locked copies in the same order.
// The same wallet may appear more than once.
func lockWallets(ctx context.Context, repos portsrepo.RepositoryProvider, refs ...domain.WalletRef) ([]domain.Wallet, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		wallet, err := resolveWallet(ctx, repos.WalletRepo, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, wallet.WalletID)
	}

	locked, err := repos.WalletRepo.FindWalletsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Wallet, 0, len(ids))
	for _, id := range ids {
		wallet, ok := locked[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, id)
		}
		out = append(out, wallet)
	}
	return out, nil
}

// Charge credits a wallet with money from outside the ledger.
// No transaction is recorded for a charge.
func (s *ledgerService) Charge(ctx context.Context, ref domain.WalletRef, amount decimal.Decimal, currencyCode string) (result *domain.Wallet, err error) {
	start := time.Now()
	defer func() { s.observe(operationCharge, start, err) }()

	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: charge amount must not be negative", apperrors.ErrInvalidAmount)
	}
	if !domain.HasMoneyScale(amount) {
		return nil, fmt.Errorf("%w: charge amount must have at most %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}
	code, err := s.registry.Normalize(currencyCode)
	if err != nil {
		return nil, err
	}

	var (
		updated  domain.Wallet
		credited decimal.Decimal
	)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		wallets, err := lockWallets(ctx, repos, ref)
		if err != nil {
			return err
		}
		wallet := wallets[0]

		rate, err := s.book.convert(ctx, repos.ExchangeRateRepo, code, wallet.CurrencyCode)
		if err != nil {
			return err
		}

		credited = domain.RoundMoney(amount.Mul(rate))
		wallet.Credit(credited)
		wallet.ModifiedAt = s.now()
		if err := repos.WalletRepo.UpdateWalletAmount(ctx, wallet.WalletID, wallet.Amount, wallet.ModifiedAt); err != nil {
			return fmt.Errorf("failed to update wallet %s: %w", wallet.WalletID, err)
		}

		updated = wallet
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Charge failed", slog.String("amount", amount.String()), slog.String("currency_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet charged",
		slog.String("wallet_id", updated.WalletID),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)),
		slog.String("currency_code", code),
		slog.String("credited", credited.StringFixed(domain.MoneyScale)))
	s.publish(ctx, domain.LedgerEvent{
		EventType:    domain.EventWalletCharged,
		ToWalletID:   updated.WalletID,
		Amount:       amount,
		CurrencyCode: code,
		OccurredAt:   updated.ModifiedAt,
	})

	return &updated, nil
}

// MakePayment moves amount, stated in currencyCode, from one wallet to another.
// Both balances and the transaction record are written atomically.
func (s *ledgerService) MakePayment(ctx context.Context, from, to domain.WalletRef, amount decimal.Decimal, currencyCode string) (result *domain.Transaction, err error) {
	start := time.Now()
	defer func() { s.observe(operationMakePayment, start, err) }()

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrInvalidAmount)
	}
	if !domain.HasMoneyScale(amount) {
		return nil, fmt.Errorf("%w: payment amount must have at most %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}
	code, err := s.registry.Normalize(currencyCode)
	if err != nil {
		return nil, err
	}

	var txn domain.Transaction
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		wallets, err := lockWallets(ctx, repos, from, to)
		if err != nil {
			return err
		}
		payer, payee := wallets[0], wallets[1]

		fromRate, err := s.book.convert(ctx, repos.ExchangeRateRepo, payer.CurrencyCode, code)
		if err != nil {
			return err
		}
		toRate, err := s.book.convert(ctx, repos.ExchangeRateRepo, code, payee.CurrencyCode)
		if err != nil {
			return err
		}

		if payer.Amount.Mul(fromRate).LessThan(amount) {
			return fmt.Errorf("%w: wallet %s cannot cover %s %s", apperrors.ErrNotEnoughMoney,
				payer.WalletID, amount.StringFixed(domain.MoneyScale), code)
		}

		// The debit is priced by multiplying like the credit, so wallets sharing a
		// currency always move the same rounded amount.
		debitRate, err := s.book.convert(ctx, repos.ExchangeRateRepo, code, payer.CurrencyCode)
		if err != nil {
			return err
		}

		now := s.now()
		if err := payer.Debit(domain.RoundMoney(amount.Mul(debitRate))); err != nil {
			return err
		}
		if payer.WalletID == payee.WalletID {
			payee.Amount = payer.Amount
		}
		payee.Credit(domain.RoundMoney(amount.Mul(toRate)))

		if payer.WalletID != payee.WalletID {
			if err := repos.WalletRepo.UpdateWalletAmount(ctx, payer.WalletID, payer.Amount, now); err != nil {
				return fmt.Errorf("failed to update wallet %s: %w", payer.WalletID, err)
			}
		}
		if err := repos.WalletRepo.UpdateWalletAmount(ctx, payee.WalletID, payee.Amount, now); err != nil {
			return fmt.Errorf("failed to update wallet %s: %w", payee.WalletID, err)
		}

		fromID := payer.WalletID
		txn = domain.Transaction{
			TransactionID: uuid.NewString(),
			FromWalletID:  &fromID,
			ToWalletID:    payee.WalletID,
			Amount:        amount,
			CurrencyCode:  code,
			CreatedAt:     now,
		}
		if err := txn.Validate(); err != nil {
			return err
		}
		if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Payment failed", slog.String("amount", amount.String()), slog.String("currency_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Payment completed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from_wallet_id", *txn.FromWalletID),
		slog.String("to_wallet_id", txn.ToWalletID),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)),
		slog.String("currency_code", code))
	s.publish(ctx, domain.LedgerEvent{
		EventType:     domain.EventPaymentCompleted,
		TransactionID: txn.TransactionID,
		FromWalletID:  *txn.FromWalletID,
		ToWalletID:    txn.ToWalletID,
		Amount:        amount,
		CurrencyCode:  code,
		OccurredAt:    txn.CreatedAt,
	})

	return &txn, nil
}
