package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		Attributes:  req.Attributes,
		Barcode:     req.Barcode,
	}
	created, err := store.Products().Create(product)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := reloadCatalog(); err != nil {
		log.Printf("could not refresh catalog after product create: %v", err)
	}
	invalidateViewCaches(r.Context())

	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := store.Products().GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := store.Products().GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product's descriptive fields
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "New field values"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := store.Products().GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	// SKU is identity, not a descriptive field; it stays as created.
	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.Tags = req.Tags
	existing.Attributes = req.Attributes
	existing.Barcode = req.Barcode

	updated, err := store.Products().Update(existing)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := reloadCatalog(); err != nil {
		log.Printf("could not refresh catalog after product update: %v", err)
	}
	invalidateViewCaches(r.Context())

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 {string} string "Deleted"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := store.Products().Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	if err := reloadCatalog(); err != nil {
		log.Printf("could not refresh catalog after product delete: %v", err)
	}
	invalidateViewCaches(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
