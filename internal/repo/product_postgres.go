package repo

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresProductRepository is a Postgres-backed ProductRepository.
type PostgresProductRepository struct {
	db dbtx
}

func NewPostgresProductRepository(db dbtx) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func marshalJSONField(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt

	if err := r.insert(p); err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) insert(p models.Product) error {
	query := `INSERT INTO products (id, name, sku, description, category_id, tags, attributes, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := queryContext()
	defer cancel()

	tags, err := marshalJSONField(p.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	attrs, err := marshalJSONField(p.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.CategoryID, tags, attrs, p.Barcode, p.CreatedAt, p.UpdatedAt)
	return err
}

const productColumns = `id, name, sku, description, category_id, tags, attributes, barcode, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (models.Product, error) {
	var p models.Product
	var tags, attrs []byte
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID,
		&tags, &attrs, &p.Barcode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return models.Product{}, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &p.Attributes); err != nil {
			return models.Product{}, fmt.Errorf("failed to decode attributes: %w", err)
		}
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	ctx, cancel := queryContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, category_id = $3, tags = $4, attributes = $5, barcode = $6, updated_at = $7
		WHERE id = $8`
	ctx, cancel := queryContext()
	defer cancel()

	tags, err := marshalJSONField(p.Tags)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode tags: %w", err)
	}
	attrs, err := marshalJSONField(p.Attributes)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode attributes: %w", err)
	}

	p.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.CategoryID, tags, attrs, p.Barcode, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Count() (int, error) {
	ctx, cancel := queryContext()
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *PostgresProductRepository) Clear() error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	return err
}

func (r *PostgresProductRepository) BulkInsert(products []models.Product) error {
	for _, p := range products {
		if err := r.insert(p); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}
	return nil
}
