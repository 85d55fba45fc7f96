package ledger

import (
	"context"
	"fmt"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// Snapshot is the backup document: the full row-set of every table at
// snapshot time.
type Snapshot struct {
	Products     []models.Product     `json:"products"`
	Inventory    []models.Inventory   `json:"inventory"`
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
	Settings     []models.Setting     `json:"settings"`
}

// Export serializes every table into a Snapshot.
func Export(store repo.Store) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Products, err = store.Products().GetAll(); err != nil {
		return Snapshot{}, storageErr("export products", err)
	}
	if snap.Inventory, err = store.Inventory().GetAll(); err != nil {
		return Snapshot{}, storageErr("export inventory", err)
	}
	if snap.Transactions, err = store.Transactions().GetAll(); err != nil {
		return Snapshot{}, storageErr("export transactions", err)
	}
	if snap.Categories, err = store.Categories().GetAll(); err != nil {
		return Snapshot{}, storageErr("export categories", err)
	}
	if snap.Settings, err = store.Settings().GetAll(); err != nil {
		return Snapshot{}, storageErr("export settings", err)
	}
	return snap, nil
}

// Restore clears all tables and re-inserts the snapshot rows. When the store
// supports multi-table transactions the whole restore is all-or-nothing.
func Restore(ctx context.Context, store repo.Store, snap Snapshot) error {
	restore := func(s repo.Store) error {
		steps := []struct {
			name string
			fn   func() error
		}{
			{"clear transactions", s.Transactions().Clear},
			{"clear inventory", s.Inventory().Clear},
			{"clear products", s.Products().Clear},
			{"clear categories", s.Categories().Clear},
			{"clear settings", s.Settings().Clear},
			{"restore categories", func() error { return s.Categories().BulkInsert(snap.Categories) }},
			{"restore products", func() error { return s.Products().BulkInsert(snap.Products) }},
			{"restore inventory", func() error { return s.Inventory().BulkInsert(snap.Inventory) }},
			{"restore transactions", func() error { return s.Transactions().BulkInsert(snap.Transactions) }},
			{"restore settings", func() error { return s.Settings().BulkInsert(snap.Settings) }},
		}
		for _, step := range steps {
			if err := step.fn(); err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
		}
		return nil
	}

	var err error
	if atomic, ok := store.(repo.AtomicStore); ok {
		err = atomic.Atomic(ctx, restore)
	} else {
		err = restore(store)
	}
	if err != nil {
		return storageErr("restore snapshot", err)
	}
	return nil
}
