package models

import (
	"encoding/json"
	"time"
)

// Setting is one application preference row, keyed by a well-known ID such
// as "appName" or "currency". Value is stored as raw JSON.
type Setting struct {
	ID        string          `json:"id"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}
