package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EntityRepo          EntityRepositoryFacade
	CurrencyRepo        CurrencyRepositoryFacade
	ExchangeRateRepo    ExchangeRateRepositoryFacade
	ReportingPeriodRepo ReportingPeriodRepositoryFacade
	AccountRepo         AccountRepositoryFacade
	TransactionRepo     TransactionRepositoryFacade
	BalanceRepo         BalanceRepositoryFacade
	AssignmentRepo      AssignmentRepositoryFacade
}
