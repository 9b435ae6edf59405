package pgsql

import (
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork: newPgxUnitOfWork(dbPool),
	}
}
