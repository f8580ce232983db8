package repositories

import (
	"context"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountHistoryRepository persists per-account monthly snapshots.
type AccountHistoryRepository interface {
	// FindRecentByAccountForUpdate returns up to limit snapshots for an
	// account ordered descending by date, locking them for update. Must be
	// called within a transaction; the reconcile routine needs the two most
	// recent rows.
	FindRecentByAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string, limit int) ([]domain.AccountHistory, error)

	// SaveHistoryInTx inserts a new snapshot row within a transaction.
	SaveHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error

	// UpdateHistoryInTx overwrites an existing snapshot row within a transaction.
	UpdateHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error

	// ListByAccount returns an account's snapshots ordered descending by date.
	ListByAccount(ctx context.Context, accountID string) ([]domain.AccountHistory, error)

	// FindHistoryByID retrieves a single snapshot row.
	FindHistoryByID(ctx context.Context, historyID string) (*domain.AccountHistory, error)

	TransactionManager
}

// TotalHistoryRepository persists the global monthly net-worth snapshots.
type TotalHistoryRepository interface {
	// FindRecentForUpdate returns up to limit total snapshots ordered
	// descending by date, locking them for update within a transaction.
	FindRecentForUpdate(ctx context.Context, tx pgx.Tx, limit int) ([]domain.TotalHistory, error)

	// SaveTotalInTx inserts a new total snapshot within a transaction.
	SaveTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error

	// UpdateTotalInTx overwrites an existing total snapshot within a transaction.
	UpdateTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error

	// ListTotals returns all total snapshots ordered descending by date.
	ListTotals(ctx context.Context) ([]domain.TotalHistory, error)

	TransactionManager
}

// NoteRepository persists annotations on account snapshots.
type NoteRepository interface {
	// SaveNote inserts a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// ListNotesByHistory returns a snapshot's notes ordered by date.
	ListNotesByHistory(ctx context.Context, historyID string) ([]domain.Note, error)
}
