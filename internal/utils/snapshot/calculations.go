package snapshot

import (
	"time"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ReconcileSnapshot decides whether a freshly computed value opens a new
// monthly bucket or overwrites the current one. It is used identically for
// per-account history and global total history.
//
// window holds the two most recent prior snapshots ordered descending by date.
// Two rows are needed, not one: after an update-in-place the variation must be
// recomputed against the row that precedes the one being overwritten.
//
// The returned SnapshotValues is the row content to persist; isNew reports
// whether it is a fresh row (insert) or the latest row rewritten (update).
func ReconcileSnapshot(current decimal.Decimal, window []domain.SnapshotValues, asOf time.Time) (domain.SnapshotValues, bool) {
	if len(window) == 0 || monthRolledOver(window[0].Date, asOf) {
		// New bucket. Variation starts at zero even when older rows exist;
		// the prior-month comparison happens on the first same-month update.
		return domain.SnapshotValues{
			Balance:   current,
			Variation: decimal.Zero,
			Date:      asOf,
		}, true
	}

	updated := domain.SnapshotValues{
		Balance:   current,
		Variation: window[0].Variation,
		Date:      asOf,
	}
	if len(window) > 1 {
		updated.Variation = PercentChange(current, window[1].Balance)
	}
	return updated, false
}

// monthRolledOver reports whether asOf falls in a strictly later calendar
// month than latest. Only the (year, month) pair matters, never the day.
func monthRolledOver(latest, asOf time.Time) bool {
	yearDiff := asOf.Year() - latest.Year()
	return yearDiff > 0 || (yearDiff == 0 && asOf.Month() > latest.Month())
}

// PercentChange computes the percentage change of current relative to
// previous, truncated to two decimal places. A zero previous value yields
// zero, guarding the division.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Mul(oneHundred).Div(previous).Sub(oneHundred).Truncate(2)
}

// NormalizeToBase converts a balance into the base currency using rate, the
// amount of the foreign currency one unit of the base currency buys. The
// result is intentionally not truncated: sums are truncated once after
// accumulation, never per line item.
func NormalizeToBase(balance decimal.Decimal, currency, base domain.Currency, rate decimal.Decimal) decimal.Decimal {
	if currency == base {
		return balance
	}
	return balance.Div(rate)
}

// ComputeTotal normalizes every account balance into the base currency and
// accumulates the overall total plus the invested (INVESTMENT accounts) and
// uninvested (CURRENT accounts) breakdown. Each sum is truncated toward zero
// to two decimal places after accumulation.
//
// rate must already be quantized to four decimal places (see TruncateRate).
func ComputeTotal(accounts []domain.Account, base domain.Currency, rate decimal.Decimal) (total, invested, uninvested decimal.Decimal) {
	total = decimal.Zero
	invested = decimal.Zero
	uninvested = decimal.Zero

	for _, acc := range accounts {
		normalized := NormalizeToBase(acc.Balance, acc.Currency, base, rate)
		total = total.Add(normalized)
		if acc.AccountType == domain.Investment {
			invested = invested.Add(normalized)
		} else {
			uninvested = uninvested.Add(normalized)
		}
	}

	return total.Truncate(2), invested.Truncate(2), uninvested.Truncate(2)
}

// TruncateRate quantizes an exchange rate to four decimal places, truncating
// toward zero. Rates are never rounded up.
func TruncateRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Truncate(4)
}
