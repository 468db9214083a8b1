package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the data needed to record a rate from a
// currency to the entity's functional currency.
type CreateExchangeRateRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	Rate         *decimal.Decimal `json:"rate" binding:"required"`
	ValidFrom    time.Time        `json:"validFrom" binding:"required"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	EntityID       string          `json:"entityID"`
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"`
	ValidFrom      time.Time       `json:"validFrom"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to a DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: r.ExchangeRateID,
		EntityID:       r.EntityID,
		CurrencyCode:   r.CurrencyCode,
		Rate:           r.Rate,
		ValidFrom:      r.ValidFrom,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
	}
}
