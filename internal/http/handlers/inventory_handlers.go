package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

// CreateInventoryHandler godoc
// @Summary Provision the inventory record for a product
// @Description Creates the single inventory record a product may hold. An
// @Description opening quantity is booked through the ledger as a stock-in.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inventory body InventoryRequest true "Inventory record"
// @Success 201 {object} models.Inventory
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Router /inventory [post]
func CreateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateInventory(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	notes := req.Notes
	if notes == "" {
		notes = "opening stock"
	}
	created, err := engine.CreateInventory(r.Context(), models.Inventory{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Location:     req.Location,
		MinQuantity:  req.MinQuantity,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
	}, ledgerOpts(notes, "", ""))
	if err != nil {
		writeError(w, err)
		return
	}

	invalidateViewCaches(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// GetInventoryHandler godoc
// @Summary List all inventory records
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Inventory
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := store.Inventory().GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.Inventory{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetInventoryByIDHandler godoc
// @Summary Get an inventory record by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory record ID"
// @Success 200 {object} models.Inventory
// @Failure 404 {string} string "Not found"
// @Router /inventory/{id} [get]
func GetInventoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	record, err := store.Inventory().GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
