package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrMissingName indicates an add-entry candidate whose name is empty after
// trimming. This is the only per-field condition that fails the call outright.
var ErrMissingName = errors.New("food entry name is required")

// ErrInvalidSlot indicates a target slot outside the six known meal slots.
var ErrInvalidSlot = errors.New("invalid meal slot")

// ErrNoActiveSlot indicates an add-entry call made with neither an explicit
// target slot nor an active slot selected on the ledger.
var ErrNoActiveSlot = errors.New("no meal slot selected")
