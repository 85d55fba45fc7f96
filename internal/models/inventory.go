package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory holds the current stock state for exactly one product.
// Quantity is never negative and is only ever changed by the ledger engine.
type Inventory struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	Quantity     int              `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Location     string           `json:"location,omitempty"`
	MinQuantity  int              `json:"min_quantity,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// InventoryChanges carries the field-level updates the ledger engine applies
// to an inventory record after a committed transaction.
type InventoryChanges struct {
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
