package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {array} ValidationError
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateCategory(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := store.Categories().Create(models.Category{
		Name:        req.Name,
		ParentID:    req.ParentID,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := reloadCatalog(); err != nil {
		log.Printf("could not refresh catalog after category create: %v", err)
	}
	invalidateViewCaches(r.Context())

	writeJSON(w, http.StatusCreated, created)
}

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := store.Categories().GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategoryByIDHandler godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [get]
func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	category, err := store.Categories().GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 {string} string "Deleted"
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := store.Categories().Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	if err := reloadCatalog(); err != nil {
		log.Printf("could not refresh catalog after category delete: %v", err)
	}
	invalidateViewCaches(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
