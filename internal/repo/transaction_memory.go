package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemoryTransactionRepository is an in-memory implementation of the
// append-only TransactionRepository.
type InMemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewInMemoryTransactionRepository creates a new instance of InMemoryTransactionRepository.
func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{transactions: []models.Transaction{}}
}

// Append writes one immutable ledger entry, assigning its identifier.
func (r *InMemoryTransactionRepository) Append(tx models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = uuid.NewString()
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	r.transactions = append(r.transactions, tx)
	return tx, nil
}

// Recent returns the limit most recent entries, newest first.
func (r *InMemoryTransactionRepository) Recent(limit int) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GetByProductID returns the product's entries in chronological order.
func (r *InMemoryTransactionRepository) GetByProductID(productID string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Transaction
	for _, tx := range r.transactions {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// GetAll returns every ledger entry in append order.
func (r *InMemoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// Clear removes every entry. Only the restore path may call this.
func (r *InMemoryTransactionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = []models.Transaction{}
	return nil
}

// BulkInsert inserts entries keeping their existing IDs.
func (r *InMemoryTransactionRepository) BulkInsert(txs []models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, txs...)
	return nil
}
