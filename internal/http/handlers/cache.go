package handlers

import (
	"context"
	"encoding/json"

	"github.com/smartstock/stock-ledger/internal/ledger"
)

// Cache keys for derived read views. Every stock mutation invalidates all of
// them; the short TTL in redissvc bounds staleness for any key missed here.
const (
	cacheKeyInventoryView = "views:inventory"
	cacheKeyLowStock      = "views:low-stock"
	cacheKeyOutOfStock    = "views:out-of-stock"
	cacheKeyValuation     = "views:valuation"
	cacheKeyRecentTx      = "transactions:recent"
)

func invalidateViewCaches(ctx context.Context) {
	cache.Invalidate(ctx,
		cacheKeyInventoryView,
		cacheKeyLowStock,
		cacheKeyOutOfStock,
		cacheKeyValuation,
		cacheKeyRecentTx,
	)
}

func cacheJSON(ctx context.Context, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	cache.Set(ctx, key, payload)
}

func ledgerOpts(notes, reference, operator string) ledger.TxOptions {
	return ledger.TxOptions{Notes: notes, Reference: reference, Operator: operator}
}
