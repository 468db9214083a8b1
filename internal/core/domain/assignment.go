package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClearableKind tags which table an assignment source points at. Modelling
// the polymorphic reference as a tagged variant lets the clearing engine
// handle both cases exhaustively instead of trusting an untyped foreign key.
type ClearableKind string

const (
	ClearableTransaction ClearableKind = "TRANSACTION"
	ClearableBalance     ClearableKind = "BALANCE"
)

// ClearableRef is a typed reference to a clearable source: either a
// Transaction or a Balance.
type ClearableRef struct {
	Kind ClearableKind `json:"kind"`
	ID   string        `json:"id"`
}

// Clearable is anything that can be matched against a clearing transaction.
// Both Balance and Transaction satisfy it.
type Clearable interface {
	ClearableRef() ClearableRef
	ClearableEntityID() string
	ClearableAmount() decimal.Decimal
	ClearableCurrency() string
	ClearableDate() time.Time
}

// Assignment records that an amount of a clearable source has been matched
// against a clearing transaction. The sum of assignment amounts against a
// given source never exceeds the source's amount, and the sum against a
// given clearing transaction never exceeds that transaction's amount.
type Assignment struct {
	AssignmentID           string          `json:"assignmentID"` // Primary Key (e.g., UUID)
	EntityID               string          `json:"entityID"`     // FK -> entities.entity_id (NON-NULL)
	Source                 ClearableRef    `json:"source"`
	ClearedByTransactionID string          `json:"clearedByTransactionID"` // FK -> transactions.transaction_id
	Amount                 decimal.Decimal `json:"amount"`                 // Positive value
	CurrencyCode           string          `json:"currencyCode"`           // Matches both endpoints
	AssignedAt             time.Time       `json:"assignedAt"`
	AuditFields
}
