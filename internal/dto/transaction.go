package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/utils"
)

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	FromWalletID  *string   `json:"fromWalletID,omitempty"`
	ToWalletID    string    `json:"toWalletID"`
	Amount        string    `json:"amount"`
	CurrencyCode  string    `json:"currencyCode"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		FromWalletID:  txn.FromWalletID,
		ToWalletID:    txn.ToWalletID,
		Amount:        utils.FormatMoney(txn.Amount),
		CurrencyCode:  txn.CurrencyCode,
		CreatedAt:     txn.CreatedAt,
	}
}

// ListTransactionsParams defines query parameters for a wallet's history.
// Before and After are inclusive bounds on the creation time.
type ListTransactionsParams struct {
	Before    *time.Time `form:"before" time_format:"2006-01-02T15:04:05Z07:00"`
	After     *time.Time `form:"after" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken *string    `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Before:    p.Before,
		After:     p.After,
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{
		Transactions: responses,
		NextToken:    nextToken,
	}
}
