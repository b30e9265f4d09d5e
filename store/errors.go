package store

import "errors"

// Validation failures surfaced by the catalog and ledger. All of them are
// recoverable user-facing conditions; handlers map them to 4xx envelopes.
var (
	ErrBelowMinimum      = errors.New("amount below property minimum investment")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrPropertyClosed    = errors.New("property is not open for funding")
	ErrNotFound          = errors.New("property not found")
)
