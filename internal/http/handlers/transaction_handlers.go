package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

const defaultRecentLimit = 20

// StockInHandler godoc
// @Summary Record a stock-in for a product
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body StockRequest true "Quantity to add"
// @Success 200 {object} ledger.Result
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "No inventory record"
// @Router /products/{id}/stock-in [post]
func StockInHandler(w http.ResponseWriter, r *http.Request) {
	var req StockRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	result, err := engine.StockIn(r.Context(), chi.URLParam(r, "id"), req.Quantity,
		ledgerOpts(req.Notes, req.Reference, req.Operator))
	if err != nil {
		writeError(w, err)
		return
	}

	invalidateViewCaches(r.Context())
	writeJSON(w, http.StatusOK, result)
}

// StockOutHandler godoc
// @Summary Record a stock-out for a product
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body StockRequest true "Quantity to remove"
// @Success 200 {object} ledger.Result
// @Failure 404 {string} string "No inventory record"
// @Failure 409 {string} string "Insufficient stock"
// @Router /products/{id}/stock-out [post]
func StockOutHandler(w http.ResponseWriter, r *http.Request) {
	var req StockRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	result, err := engine.StockOut(r.Context(), chi.URLParam(r, "id"), req.Quantity,
		ledgerOpts(req.Notes, req.Reference, req.Operator))
	if err != nil {
		writeError(w, err)
		return
	}

	invalidateViewCaches(r.Context())
	writeJSON(w, http.StatusOK, result)
}

// AdjustHandler godoc
// @Summary Adjust a product's stock to an absolute target
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body AdjustRequest true "Target quantity"
// @Success 200 {object} ledger.Result
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "No inventory record"
// @Router /products/{id}/adjust [post]
func AdjustHandler(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	result, err := engine.Adjust(r.Context(), chi.URLParam(r, "id"), req.Quantity,
		ledgerOpts(req.Notes, req.Reference, req.Operator))
	if err != nil {
		writeError(w, err)
		return
	}

	invalidateViewCaches(r.Context())
	writeJSON(w, http.StatusOK, result)
}

// RecentTransactionsHandler godoc
// @Summary List the most recent ledger entries
// @Tags ledger
// @Produce json
// @Param limit query int false "Max entries (default 20)"
// @Success 200 {object} TransactionsResult
// @Failure 400 {string} string "Invalid limit"
// @Router /transactions/recent [get]
func RecentTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	if limit == defaultRecentLimit {
		if payload, ok := cache.Get(r.Context(), cacheKeyRecentTx); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	txs, err := store.Transactions().Recent(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}

	result := TransactionsResult{Data: txs, Meta: Meta{TotalCount: len(txs)}}
	if limit == defaultRecentLimit {
		cacheJSON(r.Context(), cacheKeyRecentTx, result)
	}
	writeJSON(w, http.StatusOK, result)
}

// ProductTransactionsHandler godoc
// @Summary List a product's ledger entries in chronological order
// @Tags ledger
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} TransactionsResult
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/transactions [get]
func ProductTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := store.Products().GetByID(id); err != nil {
		writeError(w, err)
		return
	}

	txs, err := store.Transactions().GetByProductID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, TransactionsResult{Data: txs, Meta: Meta{TotalCount: len(txs)}})
}
