package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the append-only exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	CurrencyCode   string          `db:"currency_code"`
	Rate           decimal.Decimal `db:"rate"` // NUMERIC(10,2)
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}
