package repo

import "github.com/smartstock/stock-ledger/internal/models"

// TransactionRepository is the durable append-only ledger. There is no update
// and no delete: callers needing to undo a change append a compensating
// adjustment instead. Clear and BulkInsert exist solely for the backup/restore
// path, which replaces the whole table inside one atomic scope.
type TransactionRepository interface {
	// Append assigns an identifier and writes one immutable entry.
	Append(tx models.Transaction) (models.Transaction, error)
	// Recent returns the limit most recent entries, newest first.
	Recent(limit int) ([]models.Transaction, error)
	// GetByProductID returns the product's entries in chronological order.
	GetByProductID(productID string) ([]models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	Clear() error
	BulkInsert(txs []models.Transaction) error
}
