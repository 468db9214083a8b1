package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance represents an opening balance row. The transaction_no column has
// a unique constraint per entity so the synthetic key (account + currency +
// calendar year) cannot collide.
type Balance struct {
	BalanceID         string          `db:"balance_id"`
	EntityID          string          `db:"entity_id"`
	AccountID         string          `db:"account_id"`
	CurrencyCode      string          `db:"currency_code"`
	ExchangeRateID    string          `db:"exchange_rate_id"`
	ReportingPeriodID string          `db:"reporting_period_id"`
	TransactionNo     string          `db:"transaction_no"`
	Reference         string          `db:"reference"`
	BalanceType       string          `db:"balance_type"`
	TransactionType   string          `db:"transaction_type"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Amount            decimal.Decimal `db:"amount"`
	DeletedAt         *time.Time      `db:"deleted_at"`
	DeletedBy         *string         `db:"deleted_by"`
	AuditFields
}
