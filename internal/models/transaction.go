package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	FromWalletID  sql.NullString  `db:"from_wallet_id"`
	ToWalletID    string          `db:"to_wallet_id"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	CreatedAt     time.Time       `db:"created_at"`
}
