package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places every stored amount and rate has.
const MoneyScale int32 = 2

// RoundMoney rounds d to MoneyScale places, half away from zero.
// Conversion factors are kept at full division precision; only money results are rounded.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// HasMoneyScale reports whether d has no more than MoneyScale significant decimal places.
// 10.500 passes, 10.505 does not.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
