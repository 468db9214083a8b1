package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finbooks/ifrs_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntityRepo:          newPgxEntityRepository(dbPool),
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:    newPgxExchangeRateRepository(dbPool),
		ReportingPeriodRepo: newPgxReportingPeriodRepository(dbPool),
		AccountRepo:         newPgxAccountRepository(dbPool),
		TransactionRepo:     newPgxTransactionRepository(dbPool),
		BalanceRepo:         newPgxBalanceRepository(dbPool),
		AssignmentRepo:      newPgxAssignmentRepository(dbPool),
	}
}
