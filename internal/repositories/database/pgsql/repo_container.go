package pgsql

import (
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		PeriodRepo:    newPgxPeriodRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		UnitOfWork:    newPgxUnitOfWork(dbPool),
	}
}
