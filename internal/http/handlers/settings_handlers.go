package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

// GetSettingsHandler godoc
// @Summary List all settings
// @Tags settings
// @Produce json
// @Success 200 {array} models.Setting
// @Router /settings [get]
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := store.Settings().GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutSettingHandler godoc
// @Summary Create or replace a setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Param setting body SettingRequest true "New value"
// @Success 200 {object} models.Setting
// @Router /settings/{id} [put]
func PutSettingHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SettingRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	value, err := json.Marshal(req.Value)
	if err != nil {
		http.Error(w, "invalid value", http.StatusBadRequest)
		return
	}

	if err := store.Settings().Put(models.Setting{ID: id, Value: value}); err != nil {
		writeError(w, err)
		return
	}

	setting, err := store.Settings().Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}
