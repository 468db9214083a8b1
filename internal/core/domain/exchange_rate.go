package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate from a currency to the entity's
// functional currency, effective from a specific date. Rate lookups pick the
// most recent rate whose ValidFrom does not exceed the requested date.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (e.g., UUID)
	EntityID       string          `json:"entityID"`       // FK -> entities.entity_id
	CurrencyCode   string          `json:"currencyCode"`   // FK -> currencies.code (rate is to the functional currency)
	Rate           decimal.Decimal `json:"rate"`           // Precise decimal type
	ValidFrom      time.Time       `json:"validFrom"`
	AuditFields
}
