package memory

import (
	"sort"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

func sortRatesNewestFirst(rates []domain.ExchangeRate) {
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].CreatedAt.After(rates[j].CreatedAt)
	})
}

func sortTransactionsOldestFirst(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.Before(txns[j].CreatedAt)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})
}
