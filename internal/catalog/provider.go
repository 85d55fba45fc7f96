// Package catalog provides a read-only snapshot of products and categories
// for joining with inventory data. Lookups return an absence flag, never an
// error: a dangling reference renders as a placeholder downstream instead of
// failing a whole view.
package catalog

import (
	"fmt"
	"sync"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// Provider caches products and categories keyed by identifier.
type Provider struct {
	mu         sync.RWMutex
	products   map[string]models.Product
	categories map[string]models.Category
}

func NewProvider() *Provider {
	return &Provider{
		products:   map[string]models.Product{},
		categories: map[string]models.Category{},
	}
}

// Load replaces the snapshot with the current store contents. On any read
// failure the previous snapshot is kept.
func (p *Provider) Load(products repo.ProductRepository, categories repo.CategoryRepository) error {
	prods, err := products.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	cats, err := categories.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	byProduct := make(map[string]models.Product, len(prods))
	for _, prod := range prods {
		byProduct[prod.ID] = prod
	}
	byCategory := make(map[string]models.Category, len(cats))
	for _, cat := range cats {
		byCategory[cat.ID] = cat
	}

	p.mu.Lock()
	p.products = byProduct
	p.categories = byCategory
	p.mu.Unlock()
	return nil
}

// ProductByID returns the cached product, or false when unknown.
func (p *Provider) ProductByID(id string) (models.Product, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	prod, ok := p.products[id]
	return prod, ok
}

// CategoryByID returns the cached category, or false when unknown.
func (p *Provider) CategoryByID(id string) (models.Category, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cat, ok := p.categories[id]
	return cat, ok
}
