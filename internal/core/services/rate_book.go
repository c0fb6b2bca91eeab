package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// rateBook answers rate questions against a given reader, so ledger
// operations can convert using the repositories of their unit of work.
type rateBook struct {
	registry *domain.CurrencyRegistry
}

// rateOf returns the units of code one unit of the base currency buys.
// code must already be normalised.
func (b rateBook) rateOf(ctx context.Context, rates portsrepo.ExchangeRateReader, code string) (decimal.Decimal, error) {
	if err := b.registry.Validate(code); err != nil {
		return decimal.Zero, err
	}
	if b.registry.IsBase(code) {
		return decimal.NewFromInt(1), nil
	}

	latest, err := rates.FindLatestExchangeRate(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrRateNotSet, code)
		}
		return decimal.Zero, fmt.Errorf("failed to load exchange rate for %s: %w", code, err)
	}
	return latest.Rate, nil
}

// convert returns the factor turning an amount in from into an amount in to.
// The factor is not rounded.
func (b rateBook) convert(ctx context.Context, rates portsrepo.ExchangeRateReader, from, to string) (decimal.Decimal, error) {
	fromRate, err := b.rateOf(ctx, rates, from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := b.rateOf(ctx, rates, to)
	if err != nil {
		return decimal.Zero, err
	}
	return toRate.Div(fromRate), nil
}
