package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a journal posting row. DeletedAt/DeletedBy carry
// the recycle (soft delete) state; recycled rows are excluded from reads.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	EntityID        string          `db:"entity_id"`
	AccountID       string          `db:"account_id"`
	TransactionNo   string          `db:"transaction_no"`
	Reference       string          `db:"reference"`
	TransactionType string          `db:"transaction_type"`
	TransactionDate time.Time       `db:"transaction_date"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	Narration       string          `db:"narration"`
	DeletedAt       *time.Time      `db:"deleted_at"`
	DeletedBy       *string         `db:"deleted_by"`
	AuditFields
}
