package repo

import "github.com/smartstock/stock-ledger/internal/models"

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id string) (models.Category, error)
	Delete(id string) error
	Clear() error
	BulkInsert(categories []models.Category) error
}
