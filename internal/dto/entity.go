package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// CreateEntityRequest defines the data needed to bootstrap a tenant entity.
type CreateEntityRequest struct {
	Name                   string    `json:"name" binding:"required"`
	FunctionalCurrencyCode string    `json:"functionalCurrencyCode" binding:"required,uppercase,len=3"`
	CurrencySymbol         string    `json:"currencySymbol" binding:"required"`
	CurrencyName           string    `json:"currencyName" binding:"required"`
	CalendarYear           int       `json:"calendarYear" binding:"required"`
	PeriodStart            time.Time `json:"periodStart" binding:"required"`
}

// EntityResponse defines the data returned for a tenant entity.
type EntityResponse struct {
	EntityID               string    `json:"entityID"`
	Name                   string    `json:"name"`
	FunctionalCurrencyCode string    `json:"functionalCurrencyCode"`
	IsActive               bool      `json:"isActive"`
	CreatedAt              time.Time `json:"createdAt"`
	CreatedBy              string    `json:"createdBy"`
}

// ToEntityResponse converts a domain.Entity to an EntityResponse DTO.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:               e.EntityID,
		Name:                   e.Name,
		FunctionalCurrencyCode: e.FunctionalCurrencyCode,
		IsActive:               e.IsActive,
		CreatedAt:              e.CreatedAt,
		CreatedBy:              e.CreatedBy,
	}
}
