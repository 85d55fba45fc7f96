package repo

import "context"

// Store bundles the per-table repositories of one record store. The ledger
// engine, backup service, and seeder consume tables through this interface so
// they can run against Postgres or the in-memory store interchangeably.
type Store interface {
	Products() ProductRepository
	Categories() CategoryRepository
	Inventory() InventoryRepository
	Transactions() TransactionRepository
	Settings() SettingsRepository
	Users() UserRepository
}

// AtomicStore is implemented by stores that can execute multiple table
// operations in one all-or-nothing scope. fn receives a Store bound to the
// scope; if fn returns an error every write inside it is rolled back.
type AtomicStore interface {
	Store

	Atomic(ctx context.Context, fn func(Store) error) error
}
