package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountHistory is the database row shape for the account_history table.
type AccountHistory struct {
	HistoryID    string          `db:"history_id"`
	AccountID    string          `db:"account_id"`
	Balance      decimal.Decimal `db:"balance"`
	Variation    decimal.Decimal `db:"variation"`
	SnapshotDate time.Time       `db:"snapshot_date"`
}

// TotalHistory is the database row shape for the total_history table.
type TotalHistory struct {
	TotalID      string          `db:"total_id"`
	Balance      decimal.Decimal `db:"balance"`
	Invested     decimal.Decimal `db:"invested"`
	Uninvested   decimal.Decimal `db:"uninvested"`
	Variation    decimal.Decimal `db:"variation"`
	EurBrlRate   decimal.Decimal `db:"eur_brl_rate"`
	SnapshotDate time.Time       `db:"snapshot_date"`
}

// Note is the database row shape for the note table.
type Note struct {
	NoteID    string    `db:"note_id"`
	HistoryID string    `db:"account_history_id"`
	Note      string    `db:"note"`
	NoteDate  time.Time `db:"note_date"`
}
