package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

func seedBackupFixture(t *testing.T) (*repo.MemoryStore, *Engine) {
	t.Helper()
	store, engine := newTestEngine(t)
	ctx := context.Background()

	cat, err := store.Categories().Create(models.Category{Name: "Electronics"})
	require.NoError(t, err)
	product, err := store.Products().Create(models.Product{Name: "Phone", SKU: "PH-1", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = engine.CreateInventory(ctx, models.Inventory{ProductID: product.ID, Quantity: 10}, TxOptions{})
	require.NoError(t, err)
	_, err = engine.StockOut(ctx, product.ID, 3, TxOptions{Notes: "sold"})
	require.NoError(t, err)
	require.NoError(t, store.Settings().Put(models.Setting{ID: "appName", Value: json.RawMessage(`"SmartStock"`)}))

	return store, engine
}

func TestBackupRoundTrip(t *testing.T) {
	store, _ := seedBackupFixture(t)

	snap, err := Export(store)
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Inventory, 1)
	require.Len(t, snap.Transactions, 2)
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Settings, 1)

	// Restoring into a different store reproduces every table exactly.
	target := repo.NewMemoryStore()
	require.NoError(t, Restore(context.Background(), target, snap))

	restored, err := Export(target)
	require.NoError(t, err)

	want, err := json.Marshal(snap)
	require.NoError(t, err)
	got, err := json.Marshal(restored)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestRestoreReplacesExistingData(t *testing.T) {
	store, _ := seedBackupFixture(t)
	snap, err := Export(store)
	require.NoError(t, err)

	// The target already holds unrelated rows; restore must not merge them in.
	target := repo.NewMemoryStore()
	stale, err := target.Products().Create(models.Product{Name: "Stale", SKU: "ST-1"})
	require.NoError(t, err)

	require.NoError(t, Restore(context.Background(), target, snap))

	products, err := target.Products().GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.NotEqual(t, stale.ID, products[0].ID)
	assert.Equal(t, "Phone", products[0].Name)
}

func TestRestoreSurvivesLedgerReplayCheck(t *testing.T) {
	store, _ := seedBackupFixture(t)
	snap, err := Export(store)
	require.NoError(t, err)

	target := repo.NewMemoryStore()
	require.NoError(t, Restore(context.Background(), target, snap))

	inv, err := target.Inventory().GetAll()
	require.NoError(t, err)
	require.Len(t, inv, 1)

	history, err := target.Transactions().GetByProductID(inv[0].ProductID)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	assert.Equal(t, history[len(history)-1].AfterQuantity, inv[0].Quantity)
}
