package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestLedgerErrorsMatchTheirClass(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class error
	}{
		{"invalid currency is a validation error", apperrors.ErrInvalidCurrency, apperrors.ErrValidation},
		{"invalid amount is a validation error", apperrors.ErrInvalidAmount, apperrors.ErrValidation},
		{"invalid rate is a validation error", apperrors.ErrInvalidRate, apperrors.ErrValidation},
		{"missing wallet is a not found error", apperrors.ErrWalletNotFound, apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("charge failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.class)
		})
	}
}

func TestRateNotSetAndNotEnoughMoneyAreStandalone(t *testing.T) {
	assert.False(t, errors.Is(apperrors.ErrRateNotSet, apperrors.ErrNotFound))
	assert.False(t, errors.Is(apperrors.ErrNotEnoughMoney, apperrors.ErrValidation))
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to save wallet", cause)

	assert.Equal(t, "failed to save wallet: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	notFound := apperrors.NewNotFoundError("wallet w-1 not found")
	assert.Equal(t, 404, notFound.Code)
	assert.ErrorIs(t, notFound, apperrors.ErrNotFound)

	validation := apperrors.NewValidationError("bad input")
	assert.Equal(t, 400, validation.Code)
	assert.ErrorIs(t, validation, apperrors.ErrValidation)
}
