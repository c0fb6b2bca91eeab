package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
)

// Currency codes supported out of the box.
const (
	USD = "USD"
	EUR = "EUR"
	CAD = "CAD"
	CNY = "CNY"
)

// DefaultBaseCurrency is used when no base currency is configured.
const DefaultBaseCurrency = USD

// DefaultCurrencies returns the currency set used when none is configured.
func DefaultCurrencies() []string {
	return []string{USD, EUR, CAD, CNY}
}

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	IsBase       bool   `json:"isBase"`
}

// CurrencyRegistry is the closed set of currencies the ledger accepts,
// with one member designated as the base currency all rates are quoted against.
type CurrencyRegistry struct {
	base      string
	supported []string
	index     map[string]struct{}
}

// NewCurrencyRegistry builds a registry. Codes are upper-cased; the base
// currency must be part of the supported set.
func NewCurrencyRegistry(base string, supported []string) (*CurrencyRegistry, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("%w: at least one currency must be supported", apperrors.ErrValidation)
	}

	r := &CurrencyRegistry{
		base:  strings.ToUpper(strings.TrimSpace(base)),
		index: make(map[string]struct{}, len(supported)),
	}
	for _, code := range supported {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: currency code %q must be 3 letters", apperrors.ErrValidation, code)
		}
		if _, dup := r.index[code]; dup {
			continue
		}
		r.index[code] = struct{}{}
		r.supported = append(r.supported, code)
	}

	if _, ok := r.index[r.base]; !ok {
		return nil, fmt.Errorf("%w: base currency %q is not in the supported set", apperrors.ErrValidation, r.base)
	}
	return r, nil
}

// MustCurrencyRegistry is like NewCurrencyRegistry but panics on error.
func MustCurrencyRegistry(base string, supported []string) *CurrencyRegistry {
	r, err := NewCurrencyRegistry(base, supported)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate returns ErrInvalidCurrency unless code is a supported currency.
func (r *CurrencyRegistry) Validate(code string) error {
	if _, ok := r.index[code]; !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
	}
	return nil
}

// Normalize upper-cases code and validates it.
func (r *CurrencyRegistry) Normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := r.Validate(code); err != nil {
		return "", err
	}
	return code, nil
}

// Base returns the base currency code.
func (r *CurrencyRegistry) Base() string {
	return r.base
}

// IsBase reports whether code is the base currency.
func (r *CurrencyRegistry) IsBase(code string) bool {
	return code == r.base
}

// Supported returns the supported codes in configuration order.
func (r *CurrencyRegistry) Supported() []string {
	out := make([]string, len(r.supported))
	copy(out, r.supported)
	return out
}

// ExchangeCurrencies returns every supported code except the base currency.
// These are the only currencies an exchange rate can be recorded for.
func (r *CurrencyRegistry) ExchangeCurrencies() []string {
	out := make([]string, 0, len(r.supported)-1)
	for _, code := range r.supported {
		if code != r.base {
			out = append(out, code)
		}
	}
	return out
}

// Currencies returns the supported set as domain values.
func (r *CurrencyRegistry) Currencies() []Currency {
	out := make([]Currency, 0, len(r.supported))
	for _, code := range r.supported {
		out = append(out, Currency{CurrencyCode: code, IsBase: code == r.base})
	}
	return out
}
