package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no inventory record exists for the
	// requested product. Stock-in against a brand-new product fails with
	// this: callers must provision a record first via CreateInventory.
	ErrNotFound = errors.New("no inventory record for product")

	// ErrInsufficientStock is returned when a stock-out would drive the
	// quantity negative. The operation is rejected in full.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation is returned for malformed input, such as a non-positive
	// stock-in quantity or a negative adjustment target.
	ErrValidation = errors.New("validation failed")

	// ErrInconsistentWrite is returned when the ledger entry was durably
	// appended but the inventory update failed. The entry is orphaned and
	// needs reconciliation; it is never retried automatically.
	ErrInconsistentWrite = errors.New("ledger appended but inventory update failed")

	// ErrStorage is returned when the record store is unavailable. Callers
	// may retry with backoff.
	ErrStorage = errors.New("record store error")
)

// InconsistentWriteError carries the context an operator needs to replay or
// roll back an orphaned ledger entry.
type InconsistentWriteError struct {
	TransactionID  string
	ProductID      string
	BeforeQuantity int
	AfterQuantity  int
	Err            error
}

func (e *InconsistentWriteError) Error() string {
	return fmt.Sprintf("inconsistent write: transaction %s for product %s (quantity %d -> %d) committed but inventory update failed: %v",
		e.TransactionID, e.ProductID, e.BeforeQuantity, e.AfterQuantity, e.Err)
}

func (e *InconsistentWriteError) Unwrap() error {
	return ErrInconsistentWrite
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
