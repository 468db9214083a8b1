package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a rate from a currency to the entity's functional
// currency, effective from a date.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	EntityID       string          `db:"entity_id"`
	CurrencyCode   string          `db:"currency_code"`
	Rate           decimal.Decimal `db:"rate"`
	ValidFrom      time.Time       `db:"valid_from"`
	AuditFields
}
