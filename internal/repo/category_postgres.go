package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresCategoryRepository is a Postgres-backed CategoryRepository.
type PostgresCategoryRepository struct {
	db dbtx
}

func NewPostgresCategoryRepository(db dbtx) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c models.Category) (models.Category, error) {
	c.ID = uuid.NewString()
	if err := r.insert(c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) insert(c models.Category) error {
	query := `INSERT INTO categories (id, name, parent_id, description, icon) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.ParentID, c.Description, c.Icon)
	return err
}

func (r *PostgresCategoryRepository) GetAll() ([]models.Category, error) {
	query := `SELECT id, name, parent_id, description, icon FROM categories ORDER BY name`
	ctx, cancel := queryContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Description, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) GetByID(id string) (models.Category, error) {
	query := `SELECT id, name, parent_id, description, icon FROM categories WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.Description, &c.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *PostgresCategoryRepository) Delete(id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *PostgresCategoryRepository) Clear() error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM categories`)
	return err
}

func (r *PostgresCategoryRepository) BulkInsert(categories []models.Category) error {
	for _, c := range categories {
		if err := r.insert(c); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
		}
	}
	return nil
}
