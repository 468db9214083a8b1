package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType indicates which side of the ledger an opening balance sits on.
type BalanceType string

const (
	DebitBalance  BalanceType = "D"
	CreditBalance BalanceType = "C"
)

// BalanceTypes returns the allowed balance types.
func BalanceTypes() []BalanceType {
	return []BalanceType{DebitBalance, CreditBalance}
}

// Balance is an opening/brought-forward amount for an account as of a
// reporting period. It is logically a zero-origin transaction: it behaves
// like a Transaction for clearing purposes but represents a starting
// position rather than a movement.
type Balance struct {
	BalanceID         string          `json:"balanceID"`         // Primary Key (e.g., UUID)
	EntityID          string          `json:"entityID"`          // FK -> entities.entity_id (NON-NULL)
	AccountID         string          `json:"accountID"`         // FK -> accounts.account_id (NON-NULL)
	CurrencyCode      string          `json:"currencyCode"`      // FK -> currencies.code (NON-NULL)
	ExchangeRateID    string          `json:"exchangeRateID"`    // FK -> exchange_rates.exchange_rate_id
	ReportingPeriodID string          `json:"reportingPeriodID"` // FK -> reporting_periods.reporting_period_id
	TransactionNo     string          `json:"transactionNo"`     // accountID + currencyCode + calendar year
	Reference         string          `json:"reference"`         // Nullable free-form reference
	BalanceType       BalanceType     `json:"balanceType"`       // D or C
	TransactionType   TransactionType `json:"transactionType"`   // Must be a clearable type
	TransactionDate   time.Time       `json:"transactionDate"`   // Must not precede the period start
	Amount            decimal.Decimal `json:"amount"`            // Non-negative
	AuditFields
}

// DeriveTransactionNo builds the deterministic synthetic key for a balance:
// account id, currency code and reporting calendar year concatenated. This
// gives natural uniqueness per (account, currency, year) without a global
// sequence.
func DeriveTransactionNo(accountID, currencyCode string, calendarYear int) string {
	return fmt.Sprintf("%s%s%d", accountID, currencyCode, calendarYear)
}

// IsCredited reports whether the balance sits on the credit side.
func (b Balance) IsCredited() bool {
	return b.BalanceType == CreditBalance
}

// ClearableRef identifies this balance as a clearing source.
func (b Balance) ClearableRef() ClearableRef {
	return ClearableRef{Kind: ClearableBalance, ID: b.BalanceID}
}

// ClearableEntityID returns the tenant the balance belongs to.
func (b Balance) ClearableEntityID() string { return b.EntityID }

// ClearableAmount returns the full brought-forward amount.
func (b Balance) ClearableAmount() decimal.Decimal { return b.Amount }

// ClearableCurrency returns the currency the balance is denominated in.
func (b Balance) ClearableCurrency() string { return b.CurrencyCode }

// ClearableDate returns the effective date used for FIFO ordering.
func (b Balance) ClearableDate() time.Time { return b.TransactionDate }
