package models

// Account represents a ledger account row.
type Account struct {
	AccountID    string `db:"account_id"`
	EntityID     string `db:"entity_id"`
	Name         string `db:"name"`
	AccountType  string `db:"account_type"`
	CurrencyCode string `db:"currency_code"`
	Description  string `db:"description"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
