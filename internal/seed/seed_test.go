package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/repo"
)

func TestRunSeedsOnceAndBooksOpeningStock(t *testing.T) {
	store := repo.NewMemoryStore()
	state := ledger.NewState()
	require.NoError(t, state.Load(store.Inventory()))
	engine := ledger.NewEngine(store, state)
	ctx := context.Background()

	require.NoError(t, Run(ctx, store, engine))

	products, err := store.Products().GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	categories, err := store.Categories().GetAll()
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	inventory, err := store.Inventory().GetAll()
	require.NoError(t, err)
	require.Len(t, inventory, 2)

	// Every seeded unit is explained by an opening ledger entry.
	for _, inv := range inventory {
		history, err := store.Transactions().GetByProductID(inv.ProductID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 0, history[0].BeforeQuantity)
		assert.Equal(t, inv.Quantity, history[0].AfterQuantity)
	}

	settings, err := store.Settings().GetAll()
	require.NoError(t, err)
	assert.Len(t, settings, 5)

	// A second run is a no-op.
	require.NoError(t, Run(ctx, store, engine))
	products, err = store.Products().GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
