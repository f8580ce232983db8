package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateUnavailable indicates that the market-data source could not supply a
// rate for the requested day. The triggering aggregation pass must abort
// without writing anything.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrHistoryMissing indicates that an account exists but has no history
// snapshot at all. Account creation always writes the first snapshot, so this
// is a data inconsistency and deliberately not reported as not-found.
var ErrHistoryMissing = errors.New("account history missing")
