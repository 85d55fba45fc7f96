package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stock-ledger/internal/catalog"
	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

func decimalPtr(t *testing.T, v string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	require.NoError(t, err)
	return &d
}

type viewFixture struct {
	store  *repo.MemoryStore
	engine *Engine
	views  *Views
	cat    *catalog.Provider
}

func newViewFixture(t *testing.T) *viewFixture {
	t.Helper()
	store := repo.NewMemoryStore()
	state := NewState()
	require.NoError(t, state.Load(store.Inventory()))
	cat := catalog.NewProvider()
	require.NoError(t, cat.Load(store.Products(), store.Categories()))
	return &viewFixture{
		store:  store,
		engine: NewEngine(store, state),
		views:  NewViews(state, cat),
		cat:    cat,
	}
}

func (f *viewFixture) addProduct(t *testing.T, name, sku, categoryID string, inv models.Inventory) models.Product {
	t.Helper()
	product, err := f.store.Products().Create(models.Product{Name: name, SKU: sku, CategoryID: categoryID})
	require.NoError(t, err)
	inv.ProductID = product.ID
	_, err = f.engine.CreateInventory(context.Background(), inv, TxOptions{})
	require.NoError(t, err)
	require.NoError(t, f.cat.Load(f.store.Products(), f.store.Categories()))
	return product
}

func TestJoinResolvesProductAndCategory(t *testing.T) {
	f := newViewFixture(t)
	cat, err := f.store.Categories().Create(models.Category{Name: "Electronics"})
	require.NoError(t, err)
	f.addProduct(t, "Phone", "PH-1", cat.ID, models.Inventory{Quantity: 10, MinQuantity: 3})

	rows := f.views.JoinWithProducts()
	require.Len(t, rows, 1)
	assert.Equal(t, "Phone", rows[0].ProductName)
	assert.Equal(t, "PH-1", rows[0].ProductSKU)
	assert.Equal(t, "Electronics", rows[0].CategoryName)
	assert.Equal(t, models.StatusNormal, rows[0].Status)
}

func TestJoinRendersPlaceholdersForMissingProduct(t *testing.T) {
	f := newViewFixture(t)
	product := f.addProduct(t, "Ghost", "GH-1", "", models.Inventory{Quantity: 4})

	// Remove the product but keep the inventory row. The view must render the
	// row with placeholders rather than dropping or failing it.
	require.NoError(t, f.store.Products().Delete(product.ID))
	require.NoError(t, f.cat.Load(f.store.Products(), f.store.Categories()))

	rows := f.views.JoinWithProducts()
	require.Len(t, rows, 1)
	assert.Equal(t, UnknownProductName, rows[0].ProductName)
	assert.Equal(t, UnknownProductSKU, rows[0].ProductSKU)
	assert.Empty(t, rows[0].CategoryName)
}

func TestStatusBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		min      int
		want     models.StockStatus
	}{
		{"zero is out", 0, 3, models.StatusOut},
		{"zero without threshold is out", 0, 0, models.StatusOut},
		{"at threshold is low", 3, 3, models.StatusLow},
		{"below threshold is low", 2, 3, models.StatusLow},
		{"above threshold is normal", 4, 3, models.StatusNormal},
		{"no threshold is normal", 1, 0, models.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, models.StatusFor(tc.quantity, tc.min))
		})
	}
}

func TestLowStockAndOutOfStockArePartitioned(t *testing.T) {
	f := newViewFixture(t)
	f.addProduct(t, "Plenty", "A-1", "", models.Inventory{Quantity: 10, MinQuantity: 3})
	low := f.addProduct(t, "Scarce", "B-1", "", models.Inventory{Quantity: 2, MinQuantity: 3})
	out := f.addProduct(t, "Gone", "C-1", "", models.Inventory{Quantity: 0, MinQuantity: 3})

	lowRows := f.views.LowStock()
	require.Len(t, lowRows, 1)
	assert.Equal(t, low.ID, lowRows[0].ProductID)

	outRows := f.views.OutOfStock()
	require.Len(t, outRows, 1)
	assert.Equal(t, out.ID, outRows[0].ProductID)
}

func TestViewsAreIdempotentWithoutMutations(t *testing.T) {
	f := newViewFixture(t)
	f.addProduct(t, "Phone", "PH-1", "", models.Inventory{
		Quantity:     10,
		MinQuantity:  3,
		CostPrice:    decimalPtr(t, "100"),
		SellingPrice: decimalPtr(t, "150"),
	})
	f.addProduct(t, "Chair", "CH-1", "", models.Inventory{Quantity: 5})

	first, err := json.Marshal(f.views.JoinWithProducts())
	require.NoError(t, err)
	second, err := json.Marshal(f.views.JoinWithProducts())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValuationFoldsBothPrices(t *testing.T) {
	f := newViewFixture(t)
	f.addProduct(t, "Phone", "PH-1", "", models.Inventory{
		Quantity:     10,
		CostPrice:    decimalPtr(t, "69.99"),
		SellingPrice: decimalPtr(t, "89.99"),
	})
	f.addProduct(t, "Chair", "CH-1", "", models.Inventory{
		Quantity:  5,
		CostPrice: decimalPtr(t, "29.90"),
		// selling price unset, counts as zero
	})

	val := f.views.Valuation()
	assert.True(t, val.CostValue.Equal(decimal.RequireFromString("849.40")), "cost %s", val.CostValue)
	assert.True(t, val.RetailValue.Equal(decimal.RequireFromString("899.90")), "retail %s", val.RetailValue)
}

func TestValuationEmptyInventoryIsZero(t *testing.T) {
	f := newViewFixture(t)
	val := f.views.Valuation()
	assert.True(t, val.CostValue.IsZero())
	assert.True(t, val.RetailValue.IsZero())
}
