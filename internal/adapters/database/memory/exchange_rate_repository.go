package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

type exchangeRateRepository struct {
	base
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*exchangeRateRepository)(nil)

func (r *exchangeRateRepository) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	return r.write(func(s *state) error {
		for _, existing := range s.rates[rate.CurrencyCode] {
			if existing.ExchangeRateID == rate.ExchangeRateID {
				return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, rate.ExchangeRateID)
			}
		}
		s.rates[rate.CurrencyCode] = append(s.rates[rate.CurrencyCode], rate)
		return nil
	})
}

// FindLatestExchangeRate picks the greatest CreatedAt; among equal times the later insert wins.
func (r *exchangeRateRepository) FindLatestExchangeRate(_ context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	var latest *domain.ExchangeRate
	err := r.read(func(s *state) error {
		history := s.rates[currencyCode]
		for i := range history {
			if latest == nil || !history[i].CreatedAt.Before(latest.CreatedAt) {
				rate := history[i]
				latest = &rate
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (r *exchangeRateRepository) ListExchangeRates(_ context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	var out []domain.ExchangeRate
	err := r.read(func(s *state) error {
		history := s.rates[currencyCode]
		out = make([]domain.ExchangeRate, len(history))
		copy(out, history)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// newest first; stable on insertion order reversed
	reversed := make([]domain.ExchangeRate, len(out))
	for i := range out {
		reversed[len(out)-1-i] = out[i]
	}
	sortRatesNewestFirst(reversed)

	if limit > 0 && len(reversed) > limit {
		reversed = reversed[:limit]
	}
	return reversed, nil
}
