package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	"github.com/danielsvicente/my-finance-api/internal/models"
	"github.com/danielsvicente/my-finance-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountHistoryRepository struct {
	BaseRepository
}

// newPgxAccountHistoryRepository creates a new repository for account history data.
func newPgxAccountHistoryRepository(pool *pgxpool.Pool) portsrepo.AccountHistoryRepository {
	return &PgxAccountHistoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountHistoryRepository = (*PgxAccountHistoryRepository)(nil)

const historyColumns = `history_id, account_id, balance, variation, snapshot_date`

func scanAccountHistory(row pgx.Row) (domain.AccountHistory, error) {
	var m models.AccountHistory
	err := row.Scan(
		&m.HistoryID,
		&m.AccountID,
		&m.Balance,
		&m.Variation,
		&m.SnapshotDate,
	)
	if err != nil {
		return domain.AccountHistory{}, err
	}
	return mapping.ToDomainAccountHistory(m), nil
}

// FindRecentByAccountForUpdate returns the most recent snapshots for an
// account, newest first, locked for the duration of the transaction. The
// reconcile routine asks for two rows: the bucket to roll or rewrite, and the
// row before it as the variation base.
func (r *PgxAccountHistoryRepository) FindRecentByAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string, limit int) ([]domain.AccountHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM account_history
		WHERE account_id = $1
		ORDER BY snapshot_date DESC
		LIMIT $2
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent history for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectAccountHistory(rows)
}

// SaveHistoryInTx inserts a new snapshot row within a transaction.
func (r *PgxAccountHistoryRepository) SaveHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error {
	m := mapping.ToModelAccountHistory(history)

	query := `
		INSERT INTO account_history (history_id, account_id, balance, variation, snapshot_date)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query, m.HistoryID, m.AccountID, m.Balance, m.Variation, m.SnapshotDate)
	if err != nil {
		return fmt.Errorf("failed to save history snapshot for account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateHistoryInTx overwrites an existing snapshot row within a transaction.
func (r *PgxAccountHistoryRepository) UpdateHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error {
	m := mapping.ToModelAccountHistory(history)

	query := `
		UPDATE account_history
		SET balance = $2, variation = $3, snapshot_date = $4
		WHERE history_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.HistoryID, m.Balance, m.Variation, m.SnapshotDate)
	if err != nil {
		return fmt.Errorf("failed to update history snapshot %s: %w", m.HistoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListByAccount returns an account's snapshots ordered descending by date.
func (r *PgxAccountHistoryRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.AccountHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM account_history
		WHERE account_id = $1
		ORDER BY snapshot_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectAccountHistory(rows)
}

// FindHistoryByID retrieves a single snapshot row.
func (r *PgxAccountHistoryRepository) FindHistoryByID(ctx context.Context, historyID string) (*domain.AccountHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM account_history WHERE history_id = $1;`

	h, err := scanAccountHistory(r.Pool.QueryRow(ctx, query, historyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find history snapshot %s: %w", historyID, err)
	}
	return &h, nil
}

func collectAccountHistory(rows pgx.Rows) ([]domain.AccountHistory, error) {
	history := []domain.AccountHistory{}
	for rows.Next() {
		h, err := scanAccountHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return history, nil
}
