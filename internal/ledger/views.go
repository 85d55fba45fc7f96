package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/smartstock/stock-ledger/internal/models"
)

// Catalog is the read-only product/category accessor the view builder joins
// against. Lookups signal absence, they never fail.
type Catalog interface {
	ProductByID(id string) (models.Product, bool)
	CategoryByID(id string) (models.Category, bool)
}

// Placeholders rendered when an inventory row references a product or SKU
// that cannot be resolved. The row still appears rather than failing the view.
const (
	UnknownProductName = "Unknown Product"
	UnknownProductSKU  = "NO-SKU"
)

// Views derives read-only projections from the inventory state and catalog.
// All methods are pure over the current snapshot: calling them twice without
// an intervening mutation yields identical output.
type Views struct {
	state   *State
	catalog Catalog
}

func NewViews(state *State, catalog Catalog) *Views {
	return &Views{state: state, catalog: catalog}
}

// JoinWithProducts produces one display row per inventory record, resolving
// product and category details by reference.
func (v *Views) JoinWithProducts() []models.InventoryWithProduct {
	records := v.state.All()
	rows := make([]models.InventoryWithProduct, 0, len(records))
	for _, rec := range records {
		row := models.InventoryWithProduct{
			ID:           rec.ID,
			ProductID:    rec.ProductID,
			ProductName:  UnknownProductName,
			ProductSKU:   UnknownProductSKU,
			Quantity:     rec.Quantity,
			Unit:         rec.Unit,
			Location:     rec.Location,
			MinQuantity:  rec.MinQuantity,
			CostPrice:    rec.CostPrice,
			SellingPrice: rec.SellingPrice,
			Status:       models.StatusFor(rec.Quantity, rec.MinQuantity),
		}
		if product, ok := v.catalog.ProductByID(rec.ProductID); ok {
			row.ProductName = product.Name
			row.ProductSKU = product.SKU
			row.Tags = product.Tags
			if product.CategoryID != "" {
				if category, ok := v.catalog.CategoryByID(product.CategoryID); ok {
					row.CategoryName = category.Name
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// LowStock returns the joined rows at or below their minimum threshold but
// not yet out of stock.
func (v *Views) LowStock() []models.InventoryWithProduct {
	return v.filterByStatus(models.StatusLow)
}

// OutOfStock returns the joined rows with no stock left.
func (v *Views) OutOfStock() []models.InventoryWithProduct {
	return v.filterByStatus(models.StatusOut)
}

func (v *Views) filterByStatus(status models.StockStatus) []models.InventoryWithProduct {
	var out []models.InventoryWithProduct
	for _, row := range v.JoinWithProducts() {
		if row.Status == status {
			out = append(out, row)
		}
	}
	return out
}

// Valuation folds quantity x price over the full inventory set, at cost and
// at retail. A missing price counts as zero. No running total is kept: a
// stale increment would silently diverge from the ledger, a full fold cannot.
func (v *Views) Valuation() models.Valuation {
	val := models.Valuation{
		CostValue:   decimal.Zero,
		RetailValue: decimal.Zero,
	}
	for _, rec := range v.state.All() {
		qty := decimal.NewFromInt(int64(rec.Quantity))
		if rec.CostPrice != nil {
			val.CostValue = val.CostValue.Add(rec.CostPrice.Mul(qty))
		}
		if rec.SellingPrice != nil {
			val.RetailValue = val.RetailValue.Add(rec.SellingPrice.Mul(qty))
		}
	}
	return val
}
