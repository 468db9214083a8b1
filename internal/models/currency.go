package models

// Currency represents a currency registered for an entity.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // Primary key together with entity_id
	EntityID     string `db:"entity_id"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	AuditFields
}
