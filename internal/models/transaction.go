package models

import "time"

// TransactionType is the kind of stock operation a ledger entry records.
type TransactionType string

const (
	// TxStockIn adds Quantity units to the product's stock.
	TxStockIn TransactionType = "stock-in"
	// TxStockOut removes Quantity units; rejected if stock would go negative.
	TxStockOut TransactionType = "stock-out"
	// TxAdjustment sets the stock to Quantity (the absolute target).
	TxAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TxStockIn, TxStockOut, TxAdjustment:
		return true
	}
	return false
}

// Transaction is one immutable ledger entry. Entries are never edited or
// deleted; corrections are made by appending an adjustment.
//
// For stock-in and stock-out, Quantity is a positive magnitude. For an
// adjustment it is the absolute target. BeforeQuantity and AfterQuantity are
// snapshots captured at commit time, so folding the entries for a product
// reproduces its current quantity.
type Transaction struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Type           TransactionType `json:"type"`
	Quantity       int             `json:"quantity"`
	BeforeQuantity int             `json:"before_quantity"`
	AfterQuantity  int             `json:"after_quantity"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Operator       string          `json:"operator,omitempty"`
}
