package pgsql

import (
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	productRepo := newPgxProductRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: journalRepo,
		ProductRepo: productRepo,
	}
}
