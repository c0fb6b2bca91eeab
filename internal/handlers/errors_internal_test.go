package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"rate not set", fmt.Errorf("convert: %w", apperrors.ErrRateNotSet), http.StatusConflict},
		{"not enough money", apperrors.ErrNotEnoughMoney, http.StatusUnprocessableEntity},
		{"invalid currency", apperrors.ErrInvalidCurrency, http.StatusBadRequest},
		{"invalid amount", apperrors.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid rate", apperrors.ErrInvalidRate, http.StatusBadRequest},
		{"wallet not found", apperrors.ErrWalletNotFound, http.StatusNotFound},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"app error code", apperrors.NewAppError(http.StatusServiceUnavailable, "db down", errors.New("dial")), http.StatusServiceUnavailable},
		{"app error without usable code", apperrors.NewAppError(0, "weird", nil), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
