package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/smartstock/stock-ledger/internal/http/handlers"
	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/models"
)

func TestInventoryViewJoinsCatalog(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/categories", handler.CategoryRequest{Name: "Electronics"})
	require.Equal(t, http.StatusCreated, w.Code)
	category := decode[models.Category](t, w)

	w = srv.do(http.MethodPost, "/products", handler.ProductRequest{Name: "Phone", SKU: "PH-1", CategoryID: category.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	product := decode[models.Product](t, w)
	srv.createInventory(t, product.ID, 10, 3)

	w = srv.doAnonymous(http.MethodGet, "/views/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]models.InventoryWithProduct](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Phone", rows[0].ProductName)
	assert.Equal(t, "Electronics", rows[0].CategoryName)
	assert.Equal(t, models.StatusNormal, rows[0].Status)
}

func TestLowAndOutOfStockViews(t *testing.T) {
	srv := newTestServer(t)

	scarce := srv.createProduct(t, "Scarce", "SC-1")
	srv.createInventory(t, scarce.ID, 2, 3)
	gone := srv.createProduct(t, "Gone", "GO-1")
	srv.createInventory(t, gone.ID, 3, 0)

	w := srv.do(http.MethodPost, srv.stockPath(gone.ID, "stock-out"), handler.StockRequest{Quantity: 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/views/low-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	low := decode[[]models.InventoryWithProduct](t, w)
	require.Len(t, low, 1)
	assert.Equal(t, scarce.ID, low[0].ProductID)

	w = srv.doAnonymous(http.MethodGet, "/views/out-of-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[[]models.InventoryWithProduct](t, w)
	require.Len(t, out, 1)
	assert.Equal(t, gone.ID, out[0].ProductID)
}

func TestValuationView(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doAnonymous(http.MethodGet, "/views/valuation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	val := decode[models.Valuation](t, w)
	assert.True(t, val.CostValue.IsZero())
	assert.True(t, val.RetailValue.IsZero())
}

func TestBackupRestoreOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 10, 0)
	w := srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-out"), handler.StockRequest{Quantity: 4})
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodGet, "/backup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	snap := decode[ledger.Snapshot](t, w)
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Transactions, 2)

	// Wipe by restoring an empty snapshot, then bring the data back.
	w = srv.do(http.MethodPost, "/restore", ledger.Snapshot{})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Product](t, w))

	w = srv.do(http.MethodPost, "/restore", snap)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/views/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]models.InventoryWithProduct](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Phone", rows[0].ProductName)
	assert.Equal(t, 6, rows[0].Quantity)
}

func TestSettingsPutAndList(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPut, "/settings/theme", handler.SettingRequest{Value: "dark"})
	require.Equal(t, http.StatusOK, w.Code)
	setting := decode[models.Setting](t, w)
	assert.Equal(t, "theme", setting.ID)
	assert.JSONEq(t, `"dark"`, string(setting.Value))

	// Put is an upsert.
	w = srv.do(http.MethodPut, "/settings/theme", handler.SettingRequest{Value: "light"})
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.Setting](t, w)
	require.Len(t, all, 1)
	assert.JSONEq(t, `"light"`, string(all[0].Value))
}
