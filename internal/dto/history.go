package dto

import (
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// AccountHistoryResponse defines the data returned for one monthly snapshot.
type AccountHistoryResponse struct {
	HistoryID string          `json:"historyID"`
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	Variation decimal.Decimal `json:"variation"`
	Date      string          `json:"date"`
}

// ToAccountHistoryResponse converts a domain.AccountHistory to its DTO.
func ToAccountHistoryResponse(h *domain.AccountHistory) AccountHistoryResponse {
	return AccountHistoryResponse{
		HistoryID: h.HistoryID,
		AccountID: h.AccountID,
		Balance:   h.Balance,
		Variation: h.Variation,
		Date:      h.Date.Format(dateLayout),
	}
}

// ListAccountHistoryResponse wraps an account's snapshots, newest first.
type ListAccountHistoryResponse struct {
	History []AccountHistoryResponse `json:"history"`
}

// CreateNoteRequest defines the data needed to attach a note to a snapshot.
type CreateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// NoteResponse defines the data returned for a note.
type NoteResponse struct {
	NoteID    string `json:"noteID"`
	HistoryID string `json:"historyID"`
	Note      string `json:"note"`
	Date      string `json:"date"`
}

// ToNoteResponse converts a domain.Note to its DTO.
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:    n.NoteID,
		HistoryID: n.HistoryID,
		Note:      n.Text,
		Date:      n.Date.Format(dateLayout),
	}
}

// ListNotesResponse wraps a snapshot's notes.
type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}
