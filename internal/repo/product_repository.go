package repo

import "github.com/smartstock/stock-ledger/internal/models"

// ProductRepository defines the interface for product catalog operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Count() (int, error)
	Clear() error
	BulkInsert(products []models.Product) error
}
