package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes everyday accounts from investment accounts.
// It is a closed set: anything else is rejected at the boundary.
type AccountType string

const (
	Current    AccountType = "CURRENT"
	Investment AccountType = "INVESTMENT"
)

// ParseAccountType converts the stored/transported string form into an
// AccountType, rejecting unknown values.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Current, Investment:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// UnmarshalText rejects unknown account types during deserialization.
func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Currency is the closed set of currencies an account can be denominated in.
type Currency string

const (
	EUR Currency = "EUR"
	BRL Currency = "BRL"
)

// ParseCurrency converts the stored/transported string form into a Currency,
// rejecting unknown values.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case EUR, BRL:
		return Currency(s), nil
	default:
		return "", fmt.Errorf("unknown currency %q", s)
	}
}

// UnmarshalText rejects unknown currencies during deserialization.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Account represents a single financial account being tracked.
// Balance is the live value, independent of any history snapshot.
type Account struct {
	AccountID   string
	Name        string
	AccountType AccountType
	Currency    Currency
	Balance     decimal.Decimal
	AuditTimes
}
