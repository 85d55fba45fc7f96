package repo

import (
	"sync"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: []models.Category{}}
}

// Create adds a new category to the repository.
func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = uuid.NewString()
	r.categories = append(r.categories, category)
	return category, nil
}

// GetAll retrieves all categories.
func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID retrieves a category by its ID.
func (r *InMemoryCategoryRepository) GetByID(id string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Delete removes a category by its ID.
func (r *InMemoryCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

// Clear removes every category.
func (r *InMemoryCategoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = []models.Category{}
	return nil
}

// BulkInsert inserts categories keeping their existing IDs.
func (r *InMemoryCategoryRepository) BulkInsert(categories []models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, categories...)
	return nil
}
