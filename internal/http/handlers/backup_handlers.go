package handlers

import (
	"log"
	"net/http"

	"github.com/smartstock/stock-ledger/internal/ledger"
)

// ExportBackupHandler godoc
// @Summary Export a full-database snapshot
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.Snapshot
// @Router /backup [get]
func ExportBackupHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := ledger.Export(store)
	if err != nil {
		writeError(w, err)
		return
	}

	headers := http.Header{}
	headers.Set("Content-Disposition", `attachment; filename="smartstock-backup.json"`)
	writeJSON(w, http.StatusOK, snap, headers)
}

// RestoreBackupHandler godoc
// @Summary Restore a full-database snapshot
// @Description Clears every table and re-inserts the snapshot rows in one
// @Description all-or-nothing scope, then reloads the in-memory state.
// @Tags backup
// @Accept json
// @Security BearerAuth
// @Param snapshot body ledger.Snapshot true "Backup document"
// @Success 204 {string} string "Restored"
// @Failure 400 {string} string "Invalid snapshot"
// @Router /restore [post]
func RestoreBackupHandler(w http.ResponseWriter, r *http.Request) {
	var snap ledger.Snapshot
	if err := readJSON(w, r, &snap); err != nil {
		http.Error(w, "invalid snapshot document", http.StatusBadRequest)
		return
	}

	if err := ledger.Restore(r.Context(), store, snap); err != nil {
		writeError(w, err)
		return
	}

	if err := state.Load(store.Inventory()); err != nil {
		log.Printf("could not reload inventory state after restore: %v", err)
	}
	if err := reloadCatalog(); err != nil {
		log.Printf("could not reload catalog after restore: %v", err)
	}
	invalidateViewCaches(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
