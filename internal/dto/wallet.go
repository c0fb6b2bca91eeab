package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID     string    `json:"walletID"`
	OwnerID      string    `json:"ownerID"`
	CurrencyCode string    `json:"currencyCode"`
	Amount       string    `json:"amount"`
	ModifiedAt   time.Time `json:"modifiedAt"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:     w.WalletID,
		OwnerID:      w.OwnerID,
		CurrencyCode: w.CurrencyCode,
		Amount:       utils.FormatMoney(w.Amount),
		ModifiedAt:   w.ModifiedAt,
	}
}

// BalanceResponse is a wallet balance expressed in a requested currency.
type BalanceResponse struct {
	WalletID     string `json:"walletID"`
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
}

// ToBalanceResponse builds a BalanceResponse.
func ToBalanceResponse(walletID, currencyCode string, amount decimal.Decimal) BalanceResponse {
	return BalanceResponse{
		WalletID:     walletID,
		CurrencyCode: currencyCode,
		Amount:       utils.FormatMoney(amount),
	}
}

// BalanceParams are the query parameters of the balance endpoint.
type BalanceParams struct {
	CurrencyCode string `form:"currency" binding:"omitempty,len=3"`
}

// ChargeRequest tops up the caller's wallet from outside the ledger.
type ChargeRequest struct {
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"10.00" binding:"omitempty,money"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
}
