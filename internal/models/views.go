package models

import "github.com/shopspring/decimal"

// StockStatus classifies an inventory row for display.
type StockStatus string

const (
	StatusNormal StockStatus = "normal"
	StatusLow    StockStatus = "low"
	StatusOut    StockStatus = "out"
)

// StatusFor derives the stock status from a quantity and its minimum
// threshold: out at or below zero, low at or below a set threshold.
func StatusFor(quantity, minQuantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOut
	case minQuantity > 0 && quantity <= minQuantity:
		return StatusLow
	}
	return StatusNormal
}

// InventoryWithProduct is an ephemeral read-model row joining an inventory
// record with its product and category. Never persisted; recomputed on demand.
type InventoryWithProduct struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name"`
	ProductSKU   string           `json:"product_sku"`
	CategoryName string           `json:"category_name,omitempty"`
	Quantity     int              `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Location     string           `json:"location,omitempty"`
	MinQuantity  int              `json:"min_quantity,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	Status       StockStatus      `json:"status"`
}

// Valuation totals the stock value over every inventory record, priced at
// cost and at retail. Missing prices count as zero.
type Valuation struct {
	CostValue   decimal.Decimal `json:"cost_value"`
	RetailValue decimal.Decimal `json:"retail_value"`
}
