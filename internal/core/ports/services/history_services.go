package services

import (
	"context"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/danielsvicente/my-finance-api/internal/dto"
)

// HistorySvc exposes per-account snapshot history and its notes.
type HistorySvc interface {
	// ListAccountHistory returns an account's snapshots, newest first. A
	// missing account is not-found; an account without snapshots yields an
	// empty list.
	ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error)

	// AddNote attaches a note to one monthly snapshot of an account.
	AddNote(ctx context.Context, accountID, historyID string, req dto.CreateNoteRequest) (*domain.Note, error)

	// ListNotes returns the notes attached to one monthly snapshot.
	ListNotes(ctx context.Context, accountID, historyID string) ([]domain.Note, error)
}
