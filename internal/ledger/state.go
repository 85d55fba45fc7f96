package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// State is the process-local cache of inventory records, keyed by product.
// The record store stays the source of truth; the engine updates this cache
// only after a durable write has succeeded, so a stale entry can lag but
// never invent stock.
type State struct {
	mu        sync.RWMutex
	byProduct map[string]models.Inventory
}

func NewState() *State {
	return &State{byProduct: map[string]models.Inventory{}}
}

// Load replaces the cache with the full inventory table. On a read failure
// the cache is left untouched and the error reported.
func (s *State) Load(inventory repo.InventoryRepository) error {
	records, err := inventory.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	byProduct := make(map[string]models.Inventory, len(records))
	for _, rec := range records {
		byProduct[rec.ProductID] = rec
	}

	s.mu.Lock()
	s.byProduct = byProduct
	s.mu.Unlock()
	return nil
}

// Get returns the cached record for a product. Never reloads implicitly.
func (s *State) Get(productID string) (models.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byProduct[productID]
	return rec, ok
}

// All returns the cached records ordered by record ID, so derived views are
// deterministic between reloads.
func (s *State) All() []models.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inventory, 0, len(s.byProduct))
	for _, rec := range s.byProduct {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Put inserts or replaces the cached record for its product.
func (s *State) Put(rec models.Inventory) {
	s.mu.Lock()
	s.byProduct[rec.ProductID] = rec
	s.mu.Unlock()
}

// ApplyUpdate merges a committed quantity change into the cache. A no-op if
// the record is not cached locally; the durable write already happened.
func (s *State) ApplyUpdate(productID string, quantity int, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byProduct[productID]
	if !ok {
		return
	}
	rec.Quantity = quantity
	rec.UpdatedAt = updatedAt
	s.byProduct[productID] = rec
}
