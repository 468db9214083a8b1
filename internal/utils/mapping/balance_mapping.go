package mapping

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/models"
)

// ToModelBalance converts a domain Balance to a model Balance
func ToModelBalance(d domain.Balance) models.Balance {
	return models.Balance{
		BalanceID:         d.BalanceID,
		EntityID:          d.EntityID,
		AccountID:         d.AccountID,
		CurrencyCode:      d.CurrencyCode,
		ExchangeRateID:    d.ExchangeRateID,
		ReportingPeriodID: d.ReportingPeriodID,
		TransactionNo:     d.TransactionNo,
		Reference:         d.Reference,
		BalanceType:       string(d.BalanceType),
		TransactionType:   string(d.TransactionType),
		TransactionDate:   d.TransactionDate,
		Amount:            d.Amount,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalance converts a model Balance to a domain Balance
func ToDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{
		BalanceID:         m.BalanceID,
		EntityID:          m.EntityID,
		AccountID:         m.AccountID,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRateID:    m.ExchangeRateID,
		ReportingPeriodID: m.ReportingPeriodID,
		TransactionNo:     m.TransactionNo,
		Reference:         m.Reference,
		BalanceType:       domain.BalanceType(m.BalanceType),
		TransactionType:   domain.TransactionType(m.TransactionType),
		TransactionDate:   m.TransactionDate,
		Amount:            m.Amount,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBalanceSlice converts a slice of model Balances to domain Balances
func ToDomainBalanceSlice(ms []models.Balance) []domain.Balance {
	ds := make([]domain.Balance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalance(m)
	}
	return ds
}
