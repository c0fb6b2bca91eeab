package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// PaymentRequest moves money from the caller's wallet to another user's wallet.
type PaymentRequest struct {
	ToUser       string          `json:"toUser" binding:"required"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"3.00" binding:"required,money"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
}

// PaymentResponse describes a completed payment.
type PaymentResponse struct {
	TransactionID string    `json:"transactionID"`
	FromUser      string    `json:"fromUser"`
	ToUser        string    `json:"toUser"`
	Amount        string    `json:"amount"`
	CurrencyCode  string    `json:"currencyCode"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToPaymentResponse converts a transaction plus the usernames involved to a PaymentResponse.
func ToPaymentResponse(txn *domain.Transaction, fromUser, toUser string) PaymentResponse {
	return PaymentResponse{
		TransactionID: txn.TransactionID,
		FromUser:      fromUser,
		ToUser:        toUser,
		Amount:        utils.FormatMoney(txn.Amount),
		CurrencyCode:  txn.CurrencyCode,
		CreatedAt:     txn.CreatedAt,
	}
}
