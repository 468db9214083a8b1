package mapping

import (
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	"github.com/finbooks/ifrs_backend/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		EntityID:       d.EntityID,
		CurrencyCode:   d.CurrencyCode,
		Rate:           d.Rate,
		ValidFrom:      d.ValidFrom,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		EntityID:       m.EntityID,
		CurrencyCode:   m.CurrencyCode,
		Rate:           m.Rate,
		ValidFrom:      m.ValidFrom,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
