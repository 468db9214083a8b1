package domain

// Entity represents a tenant boundary. Every other record in the system is
// scoped to exactly one Entity; cross-entity references are never allowed.
type Entity struct {
	EntityID               string `json:"entityID"`               // Primary Key (e.g., UUID)
	Name                   string `json:"name"`                   // Legal/display name of the tenant
	FunctionalCurrencyCode string `json:"functionalCurrencyCode"` // FK -> currencies.code (NON-NULL)
	IsActive               bool   `json:"isActive"`
	AuditFields
}
