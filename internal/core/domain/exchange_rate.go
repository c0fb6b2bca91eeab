package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate records that one unit of the base currency was worth Rate units
// of CurrencyCode at CreatedAt. Records are append-only; the most recent one wins.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}
