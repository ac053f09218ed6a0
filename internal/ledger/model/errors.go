package model

import (
	"errors"
	"fmt"
)

// ErrTransactionPending is returned when the ledger has not confirmed a transaction into a block yet.
var ErrTransactionPending = errors.New("transaction pending")

// ErrNotFound is returned by store lookups that matched no row.
var ErrNotFound = errors.New("not found")

// TransientFetchError is returned by the ledger client once all retry attempts failed.
type TransientFetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }

// PersistenceError describes a single row that could not be upserted.
type PersistenceError struct {
	Entity string
	ID     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s %s: %v", e.Entity, e.ID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError describes a failed webhook call.
type NotificationError struct {
	URL string
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s: %v", e.URL, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// LoopError wraps a failure that reached the sync iteration boundary.
type LoopError struct {
	Iteration uint64
	Err       error
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("sync iteration %d: %v", e.Iteration, e.Err)
}

func (e *LoopError) Unwrap() error { return e.Err }
