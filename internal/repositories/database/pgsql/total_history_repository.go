package pgsql

import (
	"context"
	"fmt"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	"github.com/danielsvicente/my-finance-api/internal/models"
	"github.com/danielsvicente/my-finance-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTotalHistoryRepository struct {
	BaseRepository
}

// newPgxTotalHistoryRepository creates a new repository for total history data.
func newPgxTotalHistoryRepository(pool *pgxpool.Pool) portsrepo.TotalHistoryRepository {
	return &PgxTotalHistoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TotalHistoryRepository = (*PgxTotalHistoryRepository)(nil)

const totalColumns = `total_id, balance, invested, uninvested, variation, eur_brl_rate, snapshot_date`

func scanTotalHistory(row pgx.Row) (domain.TotalHistory, error) {
	var m models.TotalHistory
	err := row.Scan(
		&m.TotalID,
		&m.Balance,
		&m.Invested,
		&m.Uninvested,
		&m.Variation,
		&m.EurBrlRate,
		&m.SnapshotDate,
	)
	if err != nil {
		return domain.TotalHistory{}, err
	}
	return mapping.ToDomainTotalHistory(m), nil
}

// FindRecentForUpdate returns the most recent total snapshots, newest first,
// locked for the duration of the transaction.
func (r *PgxTotalHistoryRepository) FindRecentForUpdate(ctx context.Context, tx pgx.Tx, limit int) ([]domain.TotalHistory, error) {
	query := `
		SELECT ` + totalColumns + `
		FROM total_history
		ORDER BY snapshot_date DESC
		LIMIT $1
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent total history: %w", err)
	}
	defer rows.Close()

	return collectTotalHistory(rows)
}

// SaveTotalInTx inserts a new total snapshot within a transaction.
func (r *PgxTotalHistoryRepository) SaveTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error {
	m := mapping.ToModelTotalHistory(total)

	query := `
		INSERT INTO total_history (total_id, balance, invested, uninvested, variation, eur_brl_rate, snapshot_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query, m.TotalID, m.Balance, m.Invested, m.Uninvested, m.Variation, m.EurBrlRate, m.SnapshotDate)
	if err != nil {
		return fmt.Errorf("failed to save total snapshot: %w", err)
	}
	return nil
}

// UpdateTotalInTx overwrites an existing total snapshot within a transaction.
func (r *PgxTotalHistoryRepository) UpdateTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error {
	m := mapping.ToModelTotalHistory(total)

	query := `
		UPDATE total_history
		SET balance = $2, invested = $3, uninvested = $4, variation = $5, eur_brl_rate = $6, snapshot_date = $7
		WHERE total_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.TotalID, m.Balance, m.Invested, m.Uninvested, m.Variation, m.EurBrlRate, m.SnapshotDate)
	if err != nil {
		return fmt.Errorf("failed to update total snapshot %s: %w", m.TotalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListTotals returns all total snapshots ordered descending by date.
func (r *PgxTotalHistoryRepository) ListTotals(ctx context.Context) ([]domain.TotalHistory, error) {
	query := `SELECT ` + totalColumns + ` FROM total_history ORDER BY snapshot_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query total history: %w", err)
	}
	defer rows.Close()

	return collectTotalHistory(rows)
}

func collectTotalHistory(rows pgx.Rows) ([]domain.TotalHistory, error) {
	totals := []domain.TotalHistory{}
	for rows.Next() {
		t, err := scanTotalHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan total history row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating total history rows: %w", err)
	}
	return totals, nil
}
