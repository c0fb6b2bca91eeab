package dto_test

import (
	"testing"

	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidations(v))
	return v
}

func TestMoneyValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"whole amount", "10", false},
		{"two decimals", "10.25", false},
		{"trailing zeros", "10.500", false},
		{"three decimals", "10.505", true},
		{"negative", "-4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ChargeRequest{Amount: decimal.RequireFromString(tt.amount), CurrencyCode: "USD"}
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChargeAllowsZero(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(dto.ChargeRequest{CurrencyCode: "EUR"}))
}

func TestPaymentRequiresAmount(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(dto.PaymentRequest{ToUser: "bob", CurrencyCode: "EUR"})
	assert.Error(t, err)

	err = v.Struct(dto.PaymentRequest{ToUser: "bob", Amount: decimal.RequireFromString("3"), CurrencyCode: "EUR"})
	assert.NoError(t, err)
}

func TestRegisterUserRequestValidation(t *testing.T) {
	v := newValidator(t)

	req := dto.RegisterUserRequest{
		Username:        "alice",
		Name:            "Alice",
		Password:        "password123",
		PasswordConfirm: "password123",
		CurrencyCode:    "EUR",
	}
	assert.NoError(t, v.Struct(req))

	req.PasswordConfirm = "different1"
	assert.Error(t, v.Struct(req))
}
