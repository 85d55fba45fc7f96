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

func TestStockInOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 10, 3)

	w := srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-in"), handler.StockRequest{Quantity: 5, Reference: "PO-1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	result := decode[ledger.Result](t, w)
	assert.Equal(t, 15, result.NewQuantity)
	assert.NotEmpty(t, result.TransactionID)
}

func TestStockOutInsufficientReturnsConflict(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 5, 0)

	w := srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-out"), handler.StockRequest{Quantity: 8})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Quantity is untouched by the rejected operation.
	w = srv.doAnonymous(http.MethodGet, "/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decode[[]models.Inventory](t, w)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Quantity)
}

func TestStockOperationsOnUnknownProductReturn404(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, srv.stockPath("missing", "stock-in"), handler.StockRequest{Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidQuantitiesReturn400(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 10, 0)

	w := srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-in"), handler.StockRequest{Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(http.MethodPost, srv.stockPath(product.ID, "adjust"), handler.AdjustRequest{Quantity: -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 7, 0)

	w := srv.do(http.MethodPost, srv.stockPath(product.ID, "adjust"), handler.AdjustRequest{Quantity: 4, Notes: "annual count"})
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[ledger.Result](t, w)
	assert.Equal(t, 4, result.NewQuantity)
}

func TestProductTransactionHistory(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 10, 0)

	srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-out"), handler.StockRequest{Quantity: 3})
	srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-in"), handler.StockRequest{Quantity: 1})

	w := srv.doAnonymous(http.MethodGet, "/products/"+product.ID+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := decode[handler.TransactionsResult](t, w)
	require.Len(t, result.Data, 3) // opening stock plus two operations
	assert.Equal(t, 3, result.Meta.TotalCount)

	// Chronological order with chained snapshots.
	assert.Equal(t, models.TxStockIn, result.Data[0].Type)
	assert.Equal(t, 0, result.Data[0].BeforeQuantity)
	for i := 1; i < len(result.Data); i++ {
		assert.Equal(t, result.Data[i-1].AfterQuantity, result.Data[i].BeforeQuantity)
	}
}

func TestProductTransactionsUnknownProduct404(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doAnonymous(http.MethodGet, "/products/missing/transactions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecentTransactionsHonorsLimit(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 100, 0)

	for i := 0; i < 5; i++ {
		w := srv.do(http.MethodPost, srv.stockPath(product.ID, "stock-out"), handler.StockRequest{Quantity: 1})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := srv.doAnonymous(http.MethodGet, "/transactions/recent?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[handler.TransactionsResult](t, w)
	assert.Len(t, result.Data, 2)

	w = srv.doAnonymous(http.MethodGet, "/transactions/recent?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/transactions/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	result = decode[handler.TransactionsResult](t, w)
	assert.Len(t, result.Data, 6)
}

func TestDuplicateInventoryRecordRejected(t *testing.T) {
	srv := newTestServer(t)
	product := srv.createProduct(t, "Phone", "PH-1")
	srv.createInventory(t, product.ID, 10, 0)

	w := srv.do(http.MethodPost, "/inventory", handler.InventoryRequest{ProductID: product.ID, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
