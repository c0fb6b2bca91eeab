package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_TopUpHasNoSource(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "t-1",
		ToWalletID:    "w-1",
		Amount:        decimal.RequireFromString("10.00"),
		CurrencyCode:  "USD",
		CreatedAt:     time.Now().UTC(),
	}

	m := mapping.ToModelTransaction(txn)
	assert.False(t, m.FromWalletID.Valid)

	back := mapping.ToDomainTransaction(m)
	assert.Nil(t, back.FromWalletID)
	assert.True(t, back.IsTopUp())
}

func TestTransactionMapping_KeepsSource(t *testing.T) {
	from := "w-0"
	m := mapping.ToModelTransaction(domain.Transaction{TransactionID: "t-2", FromWalletID: &from, ToWalletID: "w-1"})
	require.True(t, m.FromWalletID.Valid)

	back := mapping.ToDomainTransaction(m)
	require.NotNil(t, back.FromWalletID)
	assert.Equal(t, "w-0", *back.FromWalletID)
}

func TestUserMapping_RefreshToken(t *testing.T) {
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	u := domain.User{UserID: "u-1", Username: "alice", RefreshTokenHash: "abc", RefreshTokenExpiryTime: &expiry}

	m := mapping.ToModelUser(u)
	assert.True(t, m.RefreshTokenHash.Valid)
	assert.True(t, m.RefreshTokenExpiryTime.Valid)

	back := mapping.ToDomainUser(m)
	assert.Equal(t, "abc", back.RefreshTokenHash)
	require.NotNil(t, back.RefreshTokenExpiryTime)
	assert.True(t, expiry.Equal(*back.RefreshTokenExpiryTime))

	cleared := mapping.ToModelUser(domain.User{UserID: "u-2"})
	assert.False(t, cleared.RefreshTokenHash.Valid)
	assert.Nil(t, mapping.ToDomainUser(cleared).RefreshTokenExpiryTime)
}
