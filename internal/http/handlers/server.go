package handlers

import (
	"github.com/smartstock/stock-ledger/internal/catalog"
	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/redissvc"
	"github.com/smartstock/stock-ledger/internal/repo"
)

var (
	store   repo.Store
	engine  *ledger.Engine
	state   *ledger.State
	views   *ledger.Views
	catProv *catalog.Provider
	cache   *redissvc.RedisService
)

func SetStore(s repo.Store) {
	store = s
}

func SetEngine(e *ledger.Engine) {
	engine = e
}

func SetState(s *ledger.State) {
	state = s
}

func SetViews(v *ledger.Views) {
	views = v
}

func SetCatalog(p *catalog.Provider) {
	catProv = p
}

func SetCache(c *redissvc.RedisService) {
	cache = c
}

// reloadCatalog refreshes the catalog snapshot after a product or category
// mutation so derived views resolve current names.
func reloadCatalog() error {
	return catProv.Load(store.Products(), store.Categories())
}
