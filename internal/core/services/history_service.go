package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/dto"
	"github.com/google/uuid"
)

// historyService implements the HistorySvc interface
type historyService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	historyRepo portsrepo.AccountHistoryRepository
	noteRepo    portsrepo.NoteRepository
	now         func() time.Time
}

// HistoryServiceOption is a functional option for configuring the history service
type HistoryServiceOption func(*historyService)

// WithHistoryClock overrides the service clock for deterministic tests.
func WithHistoryClock(now func() time.Time) HistoryServiceOption {
	return func(s *historyService) {
		s.now = now
	}
}

// NewHistoryService creates a new history service with the provided options
func NewHistoryService(
	accountRepo portsrepo.AccountReader,
	historyRepo portsrepo.AccountHistoryRepository,
	noteRepo portsrepo.NoteRepository,
	options ...HistoryServiceOption,
) portssvc.HistorySvc {
	svc := &historyService{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		noteRepo:    noteRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure historyService implements the HistorySvc interface
var _ portssvc.HistorySvc = (*historyService)(nil)

// ListAccountHistory returns an account's snapshots, newest first. The
// account lookup runs first so a missing account is not-found while an
// account without snapshots yields an empty list.
func (s *historyService) ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByAccount(ctx, accountID)
}

// findOwnedSnapshot fetches a snapshot and verifies it belongs to accountID.
// A snapshot hanging off a different account is reported as not-found rather
// than leaking another account's history.
func (s *historyService) findOwnedSnapshot(ctx context.Context, accountID, historyID string) (*domain.AccountHistory, error) {
	history, err := s.historyRepo.FindHistoryByID(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if history.AccountID != accountID {
		return nil, fmt.Errorf("%w: snapshot %s does not belong to account %s", apperrors.ErrNotFound, historyID, accountID)
	}
	return history, nil
}

// AddNote attaches a note to one monthly snapshot of an account.
func (s *historyService) AddNote(ctx context.Context, accountID, historyID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	if req.Note == "" {
		return nil, fmt.Errorf("%w: note text must not be empty", apperrors.ErrValidation)
	}

	if _, err := s.findOwnedSnapshot(ctx, accountID, historyID); err != nil {
		return nil, err
	}

	note := domain.Note{
		NoteID:    uuid.NewString(),
		HistoryID: historyID,
		Text:      req.Note,
		Date:      dateOf(s.now()),
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Note added", slog.String("history_id", historyID), slog.String("note_id", note.NoteID))
	return &note, nil
}

// ListNotes returns the notes attached to one monthly snapshot.
func (s *historyService) ListNotes(ctx context.Context, accountID, historyID string) ([]domain.Note, error) {
	if _, err := s.findOwnedSnapshot(ctx, accountID, historyID); err != nil {
		return nil, err
	}
	return s.noteRepo.ListNotesByHistory(ctx, historyID)
}
