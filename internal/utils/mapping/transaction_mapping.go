package mapping

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		EntityID:        d.EntityID,
		AccountID:       d.AccountID,
		TransactionNo:   d.TransactionNo,
		Reference:       d.Reference,
		TransactionType: string(d.TransactionType),
		TransactionDate: d.TransactionDate,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Narration:       d.Narration,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		EntityID:        m.EntityID,
		AccountID:       m.AccountID,
		TransactionNo:   m.TransactionNo,
		Reference:       m.Reference,
		TransactionType: domain.TransactionType(m.TransactionType),
		TransactionDate: m.TransactionDate,
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Narration:       m.Narration,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
