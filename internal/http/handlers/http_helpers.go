package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeError maps the typed engine and store failures onto HTTP statuses.
// Expected, user-recoverable conditions pass through verbatim; inconsistent
// writes are logged with their reconciliation context and reported opaquely.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInsufficientStock),
		errors.Is(err, repo.ErrDuplicateInventory),
		errors.Is(err, repo.ErrDuplicatedValueUnique):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, repo.ErrProductNotFound),
		errors.Is(err, repo.ErrCategoryNotFound),
		errors.Is(err, repo.ErrInventoryNotFound),
		errors.Is(err, repo.ErrSettingNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ledger.ErrInconsistentWrite):
		log.Printf("inconsistent write surfaced to client: %v", err)
		http.Error(w, "write requires reconciliation", http.StatusInternalServerError)
	case errors.Is(err, ledger.ErrStorage):
		http.Error(w, "storage unavailable, retry later", http.StatusServiceUnavailable)
	default:
		log.Printf("unexpected error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
