package domain

import (
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Wallet holds a single user's balance in a single currency.
type Wallet struct {
	WalletID     string          `json:"walletID"`
	OwnerID      string          `json:"ownerID"` // unique: one wallet per user
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"` // never negative
	Timestamps
}

// Credit adds an already-converted amount to the wallet.
func (w *Wallet) Credit(amount decimal.Decimal) {
	w.Amount = w.Amount.Add(amount)
}

// Debit removes an already-converted amount from the wallet.
// The balance is left untouched if it would go negative.
func (w *Wallet) Debit(amount decimal.Decimal) error {
	next := w.Amount.Sub(amount)
	if next.IsNegative() {
		return fmt.Errorf("%w: wallet %s holds %s %s, needs %s", apperrors.ErrNotEnoughMoney,
			w.WalletID, w.Amount.StringFixed(MoneyScale), w.CurrencyCode, amount.StringFixed(MoneyScale))
	}
	w.Amount = next
	return nil
}

// WalletRef identifies a wallet either directly or through its owner.
// Implemented by *Wallet, WalletID and UserID.
type WalletRef interface {
	walletRef()
}

// WalletID refers to a wallet by its identifier.
type WalletID string

// UserID refers to the wallet owned by the given user.
type UserID string

func (*Wallet) walletRef() {}
func (WalletID) walletRef() {}
func (UserID) walletRef()   {}
