package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventType names a committed ledger change.
type LedgerEventType string

const (
	EventWalletCharged    LedgerEventType = "wallet.charged"
	EventPaymentCompleted LedgerEventType = "payment.completed"
	EventRateSet          LedgerEventType = "exchange_rate.set"
)

// LedgerEvent is emitted after a unit of work commits.
type LedgerEvent struct {
	EventType     LedgerEventType `json:"eventType"`
	TransactionID string          `json:"transactionID,omitempty"`
	FromWalletID  string          `json:"fromWalletID,omitempty"`
	ToWalletID    string          `json:"toWalletID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
