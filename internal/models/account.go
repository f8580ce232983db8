package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database row shape for the account table. Enum columns are
// plain strings here; the mapping layer converts them into the closed domain
// types and rejects anything unknown.
type Account struct {
	AccountID    string          `db:"account_id"`
	Name         string          `db:"name"`
	AccountType  string          `db:"account_type"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	AuditTimes
}

// AuditTimes holds the audit timestamp columns shared by mutable tables.
type AuditTimes struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
