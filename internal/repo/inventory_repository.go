package repo

import (
	"time"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InventoryRepository defines the interface for inventory record storage.
//
// Quantity is only ever written through UpdateQuantity, and only the ledger
// engine calls it. At most one record exists per product; Create returns
// ErrDuplicateInventory on a second record for the same product.
type InventoryRepository interface {
	Create(inv models.Inventory) (models.Inventory, error)
	GetAll() ([]models.Inventory, error)
	GetByID(id string) (models.Inventory, error)
	// GetByProductID resolves the record through the indexed product_id field.
	GetByProductID(productID string) (models.Inventory, error)
	UpdateQuantity(id string, quantity int, updatedAt time.Time) error
	Clear() error
	BulkInsert(records []models.Inventory) error
}
