// Package ledger implements the inventory ledger engine: the single authority
// for changing stock quantities. Every change is explained by exactly one
// immutable transaction record, and quantities never go negative.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// TxOptions carries the optional free-text fields of a transaction record.
type TxOptions struct {
	Notes     string
	Reference string
	Operator  string
}

// Result reports a committed stock operation.
type Result struct {
	TransactionID string `json:"transaction_id"`
	NewQuantity   int    `json:"new_quantity"`
}

// Engine validates and executes stock operations against the record store,
// keeping the in-memory state consistent with storage.
//
// Operations against different products proceed independently; operations
// against the same product are serialized on a per-product mutex held for the
// whole resolve-compute-write sequence.
type Engine struct {
	store repo.Store
	state *State
	now   func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewEngine(store repo.Store, state *State) *Engine {
	return &Engine{
		store: store,
		state: state,
		now:   func() time.Time { return time.Now().UTC() },
		locks: map[string]*sync.Mutex{},
	}
}

func (e *Engine) productLock(productID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	mu, ok := e.locks[productID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[productID] = mu
	}
	return mu
}

// StockIn adds quantity units to the product's stock. The product must
// already have an inventory record; see CreateInventory.
func (e *Engine) StockIn(ctx context.Context, productID string, quantity int, opts TxOptions) (Result, error) {
	return e.execute(ctx, productID, models.TxStockIn, quantity, opts)
}

// StockOut removes quantity units. Fails with ErrInsufficientStock if the
// stock would go negative; no partial deduction occurs.
func (e *Engine) StockOut(ctx context.Context, productID string, quantity int, opts TxOptions) (Result, error) {
	return e.execute(ctx, productID, models.TxStockOut, quantity, opts)
}

// Adjust sets the product's stock to the absolute target quantity.
func (e *Engine) Adjust(ctx context.Context, productID string, target int, opts TxOptions) (Result, error) {
	return e.execute(ctx, productID, models.TxAdjustment, target, opts)
}

func (e *Engine) execute(ctx context.Context, productID string, kind models.TransactionType, quantity int, opts TxOptions) (Result, error) {
	switch kind {
	case models.TxStockIn, models.TxStockOut:
		if quantity <= 0 {
			return Result{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
		}
	case models.TxAdjustment:
		if quantity < 0 {
			return Result{}, fmt.Errorf("%w: adjustment target must not be negative, got %d", ErrValidation, quantity)
		}
	default:
		return Result{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, kind)
	}

	mu := e.productLock(productID)
	mu.Lock()
	defer mu.Unlock()

	// Resolve from the store, not the cache: the store is the source of truth.
	inv, err := e.store.Inventory().GetByProductID(productID)
	if err != nil {
		if errors.Is(err, repo.ErrInventoryNotFound) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, productID)
		}
		return Result{}, storageErr("resolve inventory", err)
	}

	before := inv.Quantity
	var after int
	switch kind {
	case models.TxStockIn:
		after = before + quantity
	case models.TxStockOut:
		after = before - quantity
		if after < 0 {
			return Result{}, fmt.Errorf("%w: have %d, requested %d", ErrInsufficientStock, before, quantity)
		}
	case models.TxAdjustment:
		after = quantity
	}

	now := e.now()
	record := models.Transaction{
		ProductID:      productID,
		Type:           kind,
		Quantity:       quantity,
		BeforeQuantity: before,
		AfterQuantity:  after,
		Date:           now,
		Notes:          opts.Notes,
		Reference:      opts.Reference,
		Operator:       opts.Operator,
	}

	// Last cancellation point. Once the append starts the operation runs to
	// completion or surfaces ErrInconsistentWrite; it is never abandoned.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	appended, err := e.commit(ctx, inv, record, after, now)
	if err != nil {
		return Result{}, err
	}

	e.state.ApplyUpdate(productID, after, now)
	return Result{TransactionID: appended.ID, NewQuantity: after}, nil
}

// commit performs the two durable writes: append the transaction record, then
// update the inventory quantity. When the store supports multi-table
// transactions both writes share one all-or-nothing scope and the
// inconsistent-write failure mode cannot occur. Otherwise the writes run
// sequentially and a failed second write surfaces ErrInconsistentWrite with
// full reconciliation context.
func (e *Engine) commit(ctx context.Context, inv models.Inventory, record models.Transaction, after int, now time.Time) (models.Transaction, error) {
	if atomic, ok := e.store.(repo.AtomicStore); ok {
		var appended models.Transaction
		err := atomic.Atomic(ctx, func(s repo.Store) error {
			var err error
			appended, err = s.Transactions().Append(record)
			if err != nil {
				return err
			}
			return s.Inventory().UpdateQuantity(inv.ID, after, now)
		})
		if err != nil {
			return models.Transaction{}, storageErr("commit transaction", err)
		}
		return appended, nil
	}

	appended, err := e.store.Transactions().Append(record)
	if err != nil {
		return models.Transaction{}, storageErr("append transaction", err)
	}
	if err := e.store.Inventory().UpdateQuantity(inv.ID, after, now); err != nil {
		iwErr := &InconsistentWriteError{
			TransactionID:  appended.ID,
			ProductID:      record.ProductID,
			BeforeQuantity: record.BeforeQuantity,
			AfterQuantity:  record.AfterQuantity,
			Err:            err,
		}
		log.Printf("RECONCILE: %v", iwErr)
		return models.Transaction{}, iwErr
	}
	return appended, nil
}

// CreateInventory provisions the inventory record for a product that has
// never held stock. A record with an opening quantity also gets an opening
// stock-in entry so the ledger explains every unit from zero.
func (e *Engine) CreateInventory(ctx context.Context, inv models.Inventory, opts TxOptions) (models.Inventory, error) {
	if inv.ProductID == "" {
		return models.Inventory{}, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if inv.Quantity < 0 {
		return models.Inventory{}, fmt.Errorf("%w: quantity must not be negative, got %d", ErrValidation, inv.Quantity)
	}
	if _, err := e.store.Products().GetByID(inv.ProductID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Inventory{}, fmt.Errorf("%w: product %s", ErrNotFound, inv.ProductID)
		}
		return models.Inventory{}, storageErr("resolve product", err)
	}

	mu := e.productLock(inv.ProductID)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.Inventory{}, err
	}

	now := e.now()
	inv.UpdatedAt = now

	opening := inv.Quantity
	inv.Quantity = 0
	created, err := e.store.Inventory().Create(inv)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateInventory) {
			return models.Inventory{}, fmt.Errorf("%w: product %s already has an inventory record", ErrValidation, inv.ProductID)
		}
		return models.Inventory{}, storageErr("create inventory", err)
	}
	e.state.Put(created)

	if opening > 0 {
		record := models.Transaction{
			ProductID:      inv.ProductID,
			Type:           models.TxStockIn,
			Quantity:       opening,
			BeforeQuantity: 0,
			AfterQuantity:  opening,
			Date:           now,
			Notes:          opts.Notes,
			Reference:      opts.Reference,
			Operator:       opts.Operator,
		}
		if _, err := e.commit(ctx, created, record, opening, now); err != nil {
			return models.Inventory{}, err
		}
		created.Quantity = opening
		e.state.ApplyUpdate(created.ProductID, opening, now)
	}
	return created, nil
}
