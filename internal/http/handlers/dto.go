package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/smartstock/stock-ledger/internal/models"
)

type ProductRequest struct {
	Name        string                           `json:"name"`
	SKU         string                           `json:"sku"`
	Description string                           `json:"description,omitempty"`
	CategoryID  string                           `json:"category_id,omitempty"`
	Tags        []string                         `json:"tags,omitempty"`
	Attributes  map[string]models.AttributeValue `json:"attributes,omitempty"`
	Barcode     string                           `json:"barcode,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type InventoryRequest struct {
	ProductID    string           `json:"product_id"`
	Quantity     int              `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Location     string           `json:"location,omitempty"`
	MinQuantity  int              `json:"min_quantity,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// StockRequest drives stock-in and stock-out. Quantity is a positive
// magnitude.
type StockRequest struct {
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
	Reference string `json:"reference,omitempty"`
	Operator  string `json:"operator,omitempty"`
}

// AdjustRequest sets the absolute target quantity.
type AdjustRequest struct {
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
	Reference string `json:"reference,omitempty"`
	Operator  string `json:"operator,omitempty"`
}

type SettingRequest struct {
	Value any `json:"value"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type TransactionsResult struct {
	Data []models.Transaction `json:"data"`
	Meta Meta                 `json:"meta,omitempty"`
}
