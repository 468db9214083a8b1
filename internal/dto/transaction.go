package dto

import (
	"time"

	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
type CreateTransactionRequest struct {
	AccountID       string           `json:"accountID" binding:"required"`
	TransactionNo   string           `json:"transactionNo,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	TransactionType string           `json:"transactionType" binding:"required,transactiontype"`
	TransactionDate time.Time        `json:"transactionDate" binding:"required"`
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode    string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	Narration       string           `json:"narration,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	EntityID            string          `json:"entityID"`
	AccountID           string          `json:"accountID"`
	TransactionNo       string          `json:"transactionNo,omitempty"`
	Reference           string          `json:"reference,omitempty"`
	TransactionType     string          `json:"transactionType"`
	TransactionTypeName string          `json:"transactionTypeName,omitempty"`
	TransactionDate     time.Time       `json:"transactionDate"`
	Amount              decimal.Decimal `json:"amount"`
	CurrencyCode        string          `json:"currencyCode"`
	Narration           string          `json:"narration,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		EntityID:        t.EntityID,
		AccountID:       t.AccountID,
		TransactionNo:   t.TransactionNo,
		Reference:       t.Reference,
		TransactionType: string(t.TransactionType),
		TransactionDate: t.TransactionDate,
		Amount:          t.Amount,
		CurrencyCode:    t.CurrencyCode,
		Narration:       t.Narration,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain transactions to DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}
