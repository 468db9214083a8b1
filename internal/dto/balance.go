package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBalanceRequest defines the data needed to create an opening balance.
// Optional fields left nil are filled from the entity's defaults before
// validation.
type CreateBalanceRequest struct {
	AccountID         string           `json:"accountID" binding:"required"`
	CurrencyCode      *string          `json:"currencyCode,omitempty" binding:"omitempty,uppercase,len=3"`
	ExchangeRateID    *string          `json:"exchangeRateID,omitempty"`
	ReportingPeriodID *string          `json:"reportingPeriodID,omitempty"`
	TransactionNo     *string          `json:"transactionNo,omitempty"`
	Reference         string           `json:"reference,omitempty"`
	BalanceType       *string          `json:"balanceType,omitempty" binding:"omitempty,balancetype"`
	TransactionType   *string          `json:"transactionType,omitempty" binding:"omitempty,clearabletype"`
	TransactionDate   *time.Time       `json:"transactionDate,omitempty"`
	Amount            *decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse defines the data returned for an opening balance.
type BalanceResponse struct {
	BalanceID         string          `json:"balanceID"`
	EntityID          string          `json:"entityID"`
	AccountID         string          `json:"accountID"`
	CurrencyCode      string          `json:"currencyCode"`
	ExchangeRateID    string          `json:"exchangeRateID"`
	ReportingPeriodID string          `json:"reportingPeriodID"`
	TransactionNo     string          `json:"transactionNo"`
	Reference         string          `json:"reference,omitempty"`
	BalanceType       string          `json:"balanceType"`
	BalanceTypeName   string          `json:"balanceTypeName,omitempty"`
	TransactionType   string          `json:"transactionType"`
	TransactionDate   time.Time       `json:"transactionDate"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ToBalanceResponse converts a domain.Balance to a BalanceResponse DTO.
func ToBalanceResponse(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		BalanceID:         b.BalanceID,
		EntityID:          b.EntityID,
		AccountID:         b.AccountID,
		CurrencyCode:      b.CurrencyCode,
		ExchangeRateID:    b.ExchangeRateID,
		ReportingPeriodID: b.ReportingPeriodID,
		TransactionNo:     b.TransactionNo,
		Reference:         b.Reference,
		BalanceType:       string(b.BalanceType),
		TransactionType:   string(b.TransactionType),
		TransactionDate:   b.TransactionDate,
		Amount:            b.Amount,
		CreatedAt:         b.CreatedAt,
		CreatedBy:         b.CreatedBy,
	}
}

// ToListBalanceResponse converts a slice of domain balances to DTOs.
func ToListBalanceResponse(balances []domain.Balance) []BalanceResponse {
	res := make([]BalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToBalanceResponse(&balances[i])
	}
	return res
}
