package domain

// Currency represents a denomination available to an entity.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key within an entity (e.g., "USD")
	EntityID     string `json:"entityID"`     // FK -> entities.entity_id (NON-NULL)
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}
