package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateSource supplies the daily exchange rate for a currency pair, consumed
// as the most recent close price on or before the given day. Any failure is
// fatal for the aggregation pass that requested it.
type RateSource interface {
	FetchDailyRate(ctx context.Context, pair string, day time.Time) (decimal.Decimal, error)
}
