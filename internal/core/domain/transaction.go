package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of journal posting.
type TransactionType string

const (
	JournalEntry  TransactionType = "JN"
	ClientInvoice TransactionType = "IN"
	CreditNote    TransactionType = "CN"
	SupplierBill  TransactionType = "BL"
	DebitNote     TransactionType = "DN"
	ClientReceipt TransactionType = "RC"
	Payment       TransactionType = "PY"
	ContraEntry   TransactionType = "CE"
)

// clearableTypes is the fixed set of transaction types that may carry an
// outstanding amount for later clearing.
var clearableTypes = map[TransactionType]struct{}{
	JournalEntry:  {},
	ClientInvoice: {},
	SupplierBill:  {},
}

// IsClearable reports whether the transaction type is eligible for clearing.
func (t TransactionType) IsClearable() bool {
	_, ok := clearableTypes[t]
	return ok
}

// ClearableTransactionTypes returns the set of types eligible for clearing.
func ClearableTransactionTypes() []TransactionType {
	return []TransactionType{JournalEntry, ClientInvoice, SupplierBill}
}

// Transaction represents a journal posting affecting one account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (e.g., UUID)
	EntityID        string          `json:"entityID"`        // FK -> entities.entity_id (NON-NULL)
	AccountID       string          `json:"accountID"`       // FK -> accounts.account_id (NON-NULL)
	TransactionNo   string          `json:"transactionNo"`   // Human-facing posting reference
	Reference       string          `json:"reference"`       // Nullable free-form reference
	TransactionType TransactionType `json:"transactionType"` // One of the enumeration above
	TransactionDate time.Time       `json:"transactionDate"` // Date the posting takes effect
	Amount          decimal.Decimal `json:"amount"`          // Positive value
	CurrencyCode    string          `json:"currencyCode"`    // FK -> currencies.code (NON-NULL)
	Narration       string          `json:"narration"`       // Nullable description
	AuditFields
}

// ClearableRef identifies this transaction as a clearing source.
func (t Transaction) ClearableRef() ClearableRef {
	return ClearableRef{Kind: ClearableTransaction, ID: t.TransactionID}
}

// ClearableEntityID returns the tenant the transaction belongs to.
func (t Transaction) ClearableEntityID() string { return t.EntityID }

// ClearableAmount returns the full posted amount of the transaction.
func (t Transaction) ClearableAmount() decimal.Decimal { return t.Amount }

// ClearableCurrency returns the currency the transaction is denominated in.
func (t Transaction) ClearableCurrency() string { return t.CurrencyCode }

// ClearableDate returns the effective date used for FIFO ordering.
func (t Transaction) ClearableDate() time.Time { return t.TransactionDate }
