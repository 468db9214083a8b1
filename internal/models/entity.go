package models

// Entity represents a tenant row.
type Entity struct {
	EntityID               string `db:"entity_id"`
	Name                   string `db:"name"`
	FunctionalCurrencyCode string `db:"functional_currency_code"`
	IsActive               bool   `db:"is_active"`
	AuditFields
}
