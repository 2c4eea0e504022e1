package stockpile

import (
	"fmt"
	"strings"
)

// ValidationError reports every business-rule violation found in one input,
// in the order the rules are checked.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Failures, "; ")
}

// NotFoundError reports a referenced item id absent from the collection searched.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.ID)
}

// InsufficientStockError reports an issuance request exceeding what is on
// hand. Available carries the live quantity for the caller to display.
type InsufficientStockError struct {
	ID        string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %q: requested %d, available %d", e.ID, e.Requested, e.Available)
}

// StorageError wraps a persistence-layer fault. The triggering operation is
// aborted; nothing after the failing read or write is assumed to have survived.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
