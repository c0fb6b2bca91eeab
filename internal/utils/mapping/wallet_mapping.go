package mapping

import (
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:     d.WalletID,
		OwnerID:      d.OwnerID,
		CurrencyCode: d.CurrencyCode,
		Amount:       d.Amount,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:     m.WalletID,
		OwnerID:      m.OwnerID,
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}
