package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresInventoryRepository is a Postgres-backed InventoryRepository.
// The schema enforces both core invariants: quantity >= 0 via a CHECK
// constraint and one record per product via a UNIQUE constraint.
type PostgresInventoryRepository struct {
	db dbtx
}

func NewPostgresInventoryRepository(db dbtx) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return *d
}

func (r *PostgresInventoryRepository) Create(inv models.Inventory) (models.Inventory, error) {
	inv.ID = uuid.NewString()
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = time.Now().UTC()
	}
	if err := r.insert(inv); err != nil {
		if isUniqueViolation(err) {
			return models.Inventory{}, ErrDuplicateInventory
		}
		return models.Inventory{}, err
	}
	return inv, nil
}

func (r *PostgresInventoryRepository) insert(inv models.Inventory) error {
	query := `INSERT INTO inventory (id, product_id, quantity, unit, location, min_quantity, cost_price, selling_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.ProductID, inv.Quantity, inv.Unit, inv.Location, inv.MinQuantity,
		nullDecimal(inv.CostPrice), nullDecimal(inv.SellingPrice), inv.UpdatedAt)
	return err
}

const inventoryColumns = `id, product_id, quantity, unit, location, min_quantity, cost_price, selling_price, updated_at`

func scanInventory(row interface{ Scan(dest ...any) error }) (models.Inventory, error) {
	var inv models.Inventory
	var cost, selling decimal.NullDecimal
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.Unit, &inv.Location,
		&inv.MinQuantity, &cost, &selling, &inv.UpdatedAt)
	if err != nil {
		return models.Inventory{}, err
	}
	if cost.Valid {
		inv.CostPrice = &cost.Decimal
	}
	if selling.Valid {
		inv.SellingPrice = &selling.Decimal
	}
	return inv, nil
}

func (r *PostgresInventoryRepository) GetAll() ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY updated_at, id`
	ctx, cancel := queryContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, inv)
	}
	return records, rows.Err()
}

func (r *PostgresInventoryRepository) GetByID(id string) (models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	inv, err := scanInventory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

func (r *PostgresInventoryRepository) GetByProductID(productID string) (models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	inv, err := scanInventory(r.db.QueryRowContext(ctx, query, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

func (r *PostgresInventoryRepository) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	query := `UPDATE inventory SET quantity = $1, updated_at = $2 WHERE id = $3`
	ctx, cancel := queryContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, quantity, updatedAt, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

func (r *PostgresInventoryRepository) Clear() error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM inventory`)
	return err
}

func (r *PostgresInventoryRepository) BulkInsert(records []models.Inventory) error {
	for _, inv := range records {
		if err := r.insert(inv); err != nil {
			return fmt.Errorf("failed to insert inventory record %s: %w", inv.ID, err)
		}
	}
	return nil
}
