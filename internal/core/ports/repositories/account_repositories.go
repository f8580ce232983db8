package repositories

import (
	"context"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts ordered by name.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAllAccounts retrieves every account, for total aggregation passes.
	ListAllAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccountInTx persists a new account within a transaction.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// UpdateAccount updates an existing account's details and balance.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountInTx updates an account within a transaction, so the
	// account row and its reconciled snapshot commit together.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// DeleteAccount removes an account. History rows and their notes go with
	// it via the schema's cascading foreign keys.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	TransactionManager
}
