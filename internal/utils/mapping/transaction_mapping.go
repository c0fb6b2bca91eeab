package mapping

import (
	"database/sql"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		ToWalletID:    d.ToWalletID,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		CreatedAt:     d.CreatedAt,
	}
	if d.FromWalletID != nil {
		m.FromWalletID = sql.NullString{String: *d.FromWalletID, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		ToWalletID:    m.ToWalletID,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		CreatedAt:     m.CreatedAt,
	}
	if m.FromWalletID.Valid {
		from := m.FromWalletID.String
		d.FromWalletID = &from
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
