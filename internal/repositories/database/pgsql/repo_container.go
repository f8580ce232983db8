package pgsql

import (
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of pgsql-backed repositories over
// one shared connection pool. The RateSource slot is left to the caller, it
// lives outside the database.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:        newPgxAccountRepository(pool),
		AccountHistoryRepo: newPgxAccountHistoryRepository(pool),
		TotalHistoryRepo:   newPgxTotalHistoryRepository(pool),
		NoteRepo:           newPgxNoteRepository(pool),
	}
}
