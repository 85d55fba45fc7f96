package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

type failingGetAllInventory struct {
	repo.InventoryRepository
}

func (f *failingGetAllInventory) GetAll() ([]models.Inventory, error) {
	return nil, errors.New("connection reset")
}

func TestLoadReplacesCacheAndKeepsItOnFailure(t *testing.T) {
	store := repo.NewMemoryStore()
	inv, err := store.Inventory().Create(models.Inventory{ProductID: "p1", Quantity: 9})
	require.NoError(t, err)

	state := NewState()
	require.NoError(t, state.Load(store.Inventory()))

	cached, ok := state.Get("p1")
	require.True(t, ok)
	assert.Equal(t, inv.ID, cached.ID)
	assert.Equal(t, 9, cached.Quantity)

	// A failed reload reports the error and leaves the cache untouched.
	err = state.Load(&failingGetAllInventory{InventoryRepository: store.Inventory()})
	require.Error(t, err)
	cached, ok = state.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 9, cached.Quantity)
}

func TestApplyUpdateIgnoresUncachedProducts(t *testing.T) {
	state := NewState()
	state.Put(models.Inventory{ID: "i1", ProductID: "p1", Quantity: 5})

	now := time.Now().UTC()
	state.ApplyUpdate("p1", 8, now)
	state.ApplyUpdate("unknown", 3, now)

	cached, ok := state.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 8, cached.Quantity)
	assert.Equal(t, now, cached.UpdatedAt)

	_, ok = state.Get("unknown")
	assert.False(t, ok)
}

func TestAllIsSortedByRecordID(t *testing.T) {
	state := NewState()
	state.Put(models.Inventory{ID: "b", ProductID: "p2"})
	state.Put(models.Inventory{ID: "a", ProductID: "p1"})
	state.Put(models.Inventory{ID: "c", ProductID: "p3"})

	all := state.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}
