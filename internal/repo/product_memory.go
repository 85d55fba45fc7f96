package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.SKU == product.SKU {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	product.ID = uuid.NewString()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	product.UpdatedAt = product.CreatedAt
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Count returns the number of stored products.
func (r *InMemoryProductRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// Clear removes every product.
func (r *InMemoryProductRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
	return nil
}

// BulkInsert inserts products keeping their existing IDs.
func (r *InMemoryProductRepository) BulkInsert(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, products...)
	return nil
}
