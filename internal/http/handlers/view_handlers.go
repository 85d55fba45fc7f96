package handlers

import (
	"net/http"

	"github.com/smartstock/stock-ledger/internal/models"
)

func writeCachedView(w http.ResponseWriter, r *http.Request, key string, build func() any) {
	if payload, ok := cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	data := build()
	cacheJSON(r.Context(), key, data)
	writeJSON(w, http.StatusOK, data)
}

func rowsOrEmpty(rows []models.InventoryWithProduct) []models.InventoryWithProduct {
	if rows == nil {
		return []models.InventoryWithProduct{}
	}
	return rows
}

// InventoryViewHandler godoc
// @Summary Inventory joined with product and category details
// @Tags views
// @Produce json
// @Success 200 {array} models.InventoryWithProduct
// @Router /views/inventory [get]
func InventoryViewHandler(w http.ResponseWriter, r *http.Request) {
	writeCachedView(w, r, cacheKeyInventoryView, func() any {
		return rowsOrEmpty(views.JoinWithProducts())
	})
}

// LowStockHandler godoc
// @Summary Inventory rows at or below their minimum threshold
// @Tags views
// @Produce json
// @Success 200 {array} models.InventoryWithProduct
// @Router /views/low-stock [get]
func LowStockHandler(w http.ResponseWriter, r *http.Request) {
	writeCachedView(w, r, cacheKeyLowStock, func() any {
		return rowsOrEmpty(views.LowStock())
	})
}

// OutOfStockHandler godoc
// @Summary Inventory rows with no stock left
// @Tags views
// @Produce json
// @Success 200 {array} models.InventoryWithProduct
// @Router /views/out-of-stock [get]
func OutOfStockHandler(w http.ResponseWriter, r *http.Request) {
	writeCachedView(w, r, cacheKeyOutOfStock, func() any {
		return rowsOrEmpty(views.OutOfStock())
	})
}

// ValuationHandler godoc
// @Summary Total stock value at cost and at retail
// @Tags views
// @Produce json
// @Success 200 {object} models.Valuation
// @Router /views/valuation [get]
func ValuationHandler(w http.ResponseWriter, r *http.Request) {
	writeCachedView(w, r, cacheKeyValuation, func() any {
		return views.Valuation()
	})
}
