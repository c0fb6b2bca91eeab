package models

import "github.com/shopspring/decimal"

// Wallet is a row of the wallets table.
type Wallet struct {
	WalletID     string          `db:"wallet_id"`
	OwnerID      string          `db:"owner_id"`
	CurrencyCode string          `db:"currency_code"`
	Amount       decimal.Decimal `db:"amount"` // NUMERIC(20,2)
	Timestamps
}
