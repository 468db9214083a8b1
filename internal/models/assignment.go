package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment records a clearing match. The source is a polymorphic
// reference stored as (source_kind, source_id).
type Assignment struct {
	AssignmentID           string          `db:"assignment_id"`
	EntityID               string          `db:"entity_id"`
	SourceKind             string          `db:"source_kind"` // TRANSACTION or BALANCE
	SourceID               string          `db:"source_id"`
	ClearedByTransactionID string          `db:"cleared_by_transaction_id"`
	Amount                 decimal.Decimal `db:"amount"`
	CurrencyCode           string          `db:"currency_code"`
	AssignedAt             time.Time       `db:"assigned_at"`
	AuditFields
}
