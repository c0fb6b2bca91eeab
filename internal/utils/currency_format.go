package utils

import (
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with exactly two decimal places.
// Example: 21 returns "21.00", 12.345 returns "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(domain.MoneyScale)
}
