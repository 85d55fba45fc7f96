package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	mu      sync.RWMutex
	records []models.Inventory
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{records: []models.Inventory{}}
}

// Create adds an inventory record, enforcing one record per product.
func (r *InMemoryInventoryRepository) Create(inv models.Inventory) (models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ProductID == inv.ProductID {
			return models.Inventory{}, ErrDuplicateInventory
		}
	}
	inv.ID = uuid.NewString()
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = time.Now().UTC()
	}
	r.records = append(r.records, inv)
	return inv, nil
}

// GetAll retrieves all inventory records.
func (r *InMemoryInventoryRepository) GetAll() ([]models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Inventory, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetByID retrieves an inventory record by its ID.
func (r *InMemoryInventoryRepository) GetByID(id string) (models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

// GetByProductID retrieves the record for a product.
func (r *InMemoryInventoryRepository) GetByProductID(productID string) (models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ProductID == productID {
			return rec, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

// UpdateQuantity sets the stored quantity and timestamp for one record.
func (r *InMemoryInventoryRepository) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records[i].Quantity = quantity
			r.records[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrInventoryNotFound
}

// Clear removes every inventory record.
func (r *InMemoryInventoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = []models.Inventory{}
	return nil
}

// BulkInsert inserts records keeping their existing IDs.
func (r *InMemoryInventoryRepository) BulkInsert(records []models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
	return nil
}
