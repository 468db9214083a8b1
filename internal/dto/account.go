package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,accounttype"`
	CurrencyCode string             `json:"currencyCode" binding:"required,uppercase,len=3"`
	Description  string             `json:"description,omitempty"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	EntityID        string    `json:"entityID"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	AccountTypeName string    `json:"accountTypeName,omitempty"`
	CurrencyCode    string    `json:"currencyCode"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		EntityID:     a.EntityID,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		CurrencyCode: a.CurrencyCode,
		Description:  a.Description,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		CreatedBy:    a.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of domain accounts to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
