package services

import (
	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services against the repository
// provider. The entity service doubles as the tenant context resolver used
// by the balance service for defaulting.
func NewServiceContainer(repos portsrepo.RepositoryProvider, lookup portssvc.ConfigLookup) *portssvc.ServiceContainer {
	entitySvc := NewEntityService(repos.EntityRepo, repos.CurrencyRepo, repos.ExchangeRateRepo, repos.ReportingPeriodRepo)

	return &portssvc.ServiceContainer{
		Entity:       entitySvc,
		Account:      NewAccountService(repos.AccountRepo, repos.CurrencyRepo),
		Currency:     NewCurrencyService(repos.CurrencyRepo, repos.EntityRepo),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CurrencyRepo),
		Balance:      NewBalanceService(repos.BalanceRepo, repos.AccountRepo, repos.ReportingPeriodRepo, entitySvc),
		Clearing:     NewClearingService(repos.AssignmentRepo, repos.BalanceRepo, repos.TransactionRepo),
		Translator:   NewTranslatorService(lookup),
	}
}
