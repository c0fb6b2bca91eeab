package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest records a new rate for the currency in the path.
// Rate is how many units of the currency one unit of the base currency buys.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" swaggertype:"string" example:"1.10" binding:"required,money"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string    `json:"exchangeRateID"`
	CurrencyCode   string    `json:"currencyCode"`
	Rate           string    `json:"rate"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		CurrencyCode:   rate.CurrencyCode,
		Rate:           rate.Rate.StringFixed(domain.MoneyScale),
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ListExchangeRatesParams defines query parameters for the rate history.
type ListExchangeRatesParams struct {
	Limit int `form:"limit,default=20" binding:"min=0,max=500"`
}

// ConvertParams are the query parameters of the conversion endpoint.
type ConvertParams struct {
	From   string          `form:"from" binding:"required,len=3"`
	To     string          `form:"to" binding:"required,len=3"`
	Amount decimal.Decimal `form:"amount" swaggertype:"string" binding:"omitempty,money"`
}

// ConversionResponse reports the factor between two currencies and, optionally, a converted amount.
type ConversionResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Factor string `json:"factor"`
	Amount string `json:"amount,omitempty"`
}
