package repo

import (
	"context"
	"sync"
)

// MemoryStore bundles the in-memory repositories into one record store.
// Used by tests and by development runs without a database.
type MemoryStore struct {
	atomicMu sync.Mutex

	products     *InMemoryProductRepository
	categories   *InMemoryCategoryRepository
	inventory    *InMemoryInventoryRepository
	transactions *InMemoryTransactionRepository
	settings     *InMemorySettingsRepository
	users        *InMemoryUserRepository
}

// NewMemoryStore creates a MemoryStore with empty tables.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:     NewInMemoryProductRepository(),
		categories:   NewInMemoryCategoryRepository(),
		inventory:    NewInMemoryInventoryRepository(),
		transactions: NewInMemoryTransactionRepository(),
		settings:     NewInMemorySettingsRepository(),
		users:        NewInMemoryUserRepository(),
	}
}

func (s *MemoryStore) Products() ProductRepository         { return s.products }
func (s *MemoryStore) Categories() CategoryRepository      { return s.categories }
func (s *MemoryStore) Inventory() InventoryRepository      { return s.inventory }
func (s *MemoryStore) Transactions() TransactionRepository { return s.transactions }
func (s *MemoryStore) Settings() SettingsRepository        { return s.settings }
func (s *MemoryStore) Users() UserRepository               { return s.users }

// Atomic serializes multi-table scopes against each other. Writes inside the
// scope are applied directly and are not rolled back if fn fails, so callers
// must validate before writing, the same discipline the batch-append path of
// an append-only store follows.
func (s *MemoryStore) Atomic(_ context.Context, fn func(Store) error) error {
	s.atomicMu.Lock()
	defer s.atomicMu.Unlock()
	return fn(s)
}
