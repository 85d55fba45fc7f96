// Package seed loads a small demo dataset on first start so a fresh
// deployment has something to look at.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func rawString(v string) json.RawMessage {
	out, _ := json.Marshal(v)
	return out
}

// Run populates demo categories, products, inventory and settings. It is a
// no-op when any product already exists, so restarts never duplicate data.
// Opening quantities go through the engine so each one is backed by a
// stock-in record.
func Run(ctx context.Context, store repo.Store, engine *ledger.Engine) error {
	count, err := store.Products().Count()
	if err != nil {
		return fmt.Errorf("seed: counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	electronics, err := store.Categories().Create(models.Category{
		Name:        "Electronics",
		Description: "Electronic devices",
		Icon:        "smartphone",
	})
	if err != nil {
		return fmt.Errorf("seed: creating category: %w", err)
	}
	office, err := store.Categories().Create(models.Category{
		Name:        "Office Supplies",
		Description: "Everyday office items",
		Icon:        "business_center",
	})
	if err != nil {
		return fmt.Errorf("seed: creating category: %w", err)
	}
	if _, err := store.Categories().Create(models.Category{
		Name:        "Household",
		Description: "Daily household items",
		Icon:        "home",
	}); err != nil {
		return fmt.Errorf("seed: creating category: %w", err)
	}

	phone, err := store.Products().Create(models.Product{
		Name:        "iPhone 14 Pro",
		SKU:         "IP14P-BLK-128",
		Description: "Apple iPhone 14 Pro 128GB Black",
		CategoryID:  electronics.ID,
		Tags:        []string{"phone", "apple", "premium"},
		Barcode:     "123456789012",
		Attributes: map[string]models.AttributeValue{
			"color":   models.StringAttr("black"),
			"storage": models.StringAttr("128GB"),
		},
	})
	if err != nil {
		return fmt.Errorf("seed: creating product: %w", err)
	}
	chair, err := store.Products().Create(models.Product{
		Name:        "Office Chair",
		SKU:         "OFC-CH-BLK",
		Description: "Ergonomic office chair, black",
		CategoryID:  office.ID,
		Tags:        []string{"furniture", "office"},
		Barcode:     "223456789012",
		Attributes: map[string]models.AttributeValue{
			"color":    models.StringAttr("black"),
			"material": models.StringAttr("mesh"),
		},
	})
	if err != nil {
		return fmt.Errorf("seed: creating product: %w", err)
	}

	opening := ledger.TxOptions{Notes: "opening stock"}
	if _, err := engine.CreateInventory(ctx, models.Inventory{
		ProductID:    phone.ID,
		Quantity:     10,
		Unit:         "unit",
		Location:     "A-01-01",
		MinQuantity:  3,
		CostPrice:    price("6999"),
		SellingPrice: price("8999"),
	}, opening); err != nil {
		return fmt.Errorf("seed: creating inventory: %w", err)
	}
	if _, err := engine.CreateInventory(ctx, models.Inventory{
		ProductID:    chair.ID,
		Quantity:     5,
		Unit:         "unit",
		Location:     "B-02-03",
		MinQuantity:  2,
		CostPrice:    price("299"),
		SellingPrice: price("499"),
	}, opening); err != nil {
		return fmt.Errorf("seed: creating inventory: %w", err)
	}

	settings := []models.Setting{
		{ID: "appName", Value: rawString("SmartStock")},
		{ID: "companyName", Value: rawString("My Company")},
		{ID: "currency", Value: rawString("CNY")},
		{ID: "theme", Value: rawString("light")},
		{ID: "version", Value: rawString("1.0.0")},
	}
	for _, s := range settings {
		if err := store.Settings().Put(s); err != nil {
			return fmt.Errorf("seed: writing setting %s: %w", s.ID, err)
		}
	}

	return nil
}
