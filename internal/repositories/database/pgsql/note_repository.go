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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNoteRepository struct {
	BaseRepository
}

// newPgxNoteRepository creates a new repository for note data.
func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.NoteRepository = (*PgxNoteRepository)(nil)

// SaveNote inserts a new note.
func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	m := mapping.ToModelNote(note)

	query := `
		INSERT INTO note (note_id, account_history_id, note, note_date)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.NoteID, m.HistoryID, m.Note, m.NoteDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: history snapshot %s", apperrors.ErrNotFound, m.HistoryID)
		}
		return fmt.Errorf("failed to save note for snapshot %s: %w", m.HistoryID, err)
	}
	return nil
}

// ListNotesByHistory returns a snapshot's notes ordered by date.
func (r *PgxNoteRepository) ListNotesByHistory(ctx context.Context, historyID string) ([]domain.Note, error) {
	query := `
		SELECT note_id, account_history_id, note, note_date
		FROM note
		WHERE account_history_id = $1
		ORDER BY note_date;
	`
	rows, err := r.Pool.Query(ctx, query, historyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for snapshot %s: %w", historyID, err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var m models.Note
		if err := rows.Scan(&m.NoteID, &m.HistoryID, &m.Note, &m.NoteDate); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, mapping.ToDomainNote(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}
	return notes, nil
}
