package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotValues is the month-keyed (balance, variation, date) triple shared
// by per-account history and global total history. The reconcile routine
// operates on this shape for both.
type SnapshotValues struct {
	Balance   decimal.Decimal
	Variation decimal.Decimal
	Date      time.Time
}

// AccountHistory is one account's snapshot for a calendar month.
// At most one row exists per (account, year, month); within the month the row
// is mutated in place, on rollover a fresh row is created.
type AccountHistory struct {
	HistoryID string
	AccountID string
	SnapshotValues
}

// TotalHistory is the global net-worth snapshot for a calendar month,
// EUR-normalized. Invested and Uninvested carry the INVESTMENT / CURRENT
// breakdown but only Balance is variation-tracked.
type TotalHistory struct {
	TotalID    string
	Invested   decimal.Decimal
	Uninvested decimal.Decimal
	EurBrlRate decimal.Decimal
	SnapshotValues
}

// Note is a freeform annotation attached to one monthly account snapshot.
type Note struct {
	NoteID    string
	HistoryID string
	Text      string
	Date      time.Time
}
