package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of value moved into ToWalletID.
// Amount is expressed in CurrencyCode, the currency the payer stated,
// which need not match either wallet's currency.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	FromWalletID  *string         `json:"fromWalletID,omitempty"` // nil for external top-ups
	ToWalletID    string          `json:"toWalletID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsTopUp reports whether the value came from outside the ledger.
func (t Transaction) IsTopUp() bool {
	return t.FromWalletID == nil
}

// Involves reports whether walletID is the source or destination.
func (t Transaction) Involves(walletID string) bool {
	if t.ToWalletID == walletID {
		return true
	}
	return t.FromWalletID != nil && *t.FromWalletID == walletID
}

// Validate checks the invariants a stored transaction must satisfy.
func (t Transaction) Validate() error {
	if t.ToWalletID == "" {
		return fmt.Errorf("%w: destination wallet is required", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrInvalidAmount)
	}
	if !HasMoneyScale(t.Amount) {
		return fmt.Errorf("%w: transaction amount must have at most %d decimal places", apperrors.ErrInvalidAmount, MoneyScale)
	}
	if t.CurrencyCode == "" {
		return fmt.Errorf("%w: transaction currency is required", apperrors.ErrValidation)
	}
	return nil
}

// TransactionFilter narrows a wallet's history. Before and After are inclusive.
type TransactionFilter struct {
	Before    *time.Time
	After     *time.Time
	Limit     int
	NextToken *string
}
