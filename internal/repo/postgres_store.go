package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code serves both plain and transaction-scoped access.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const queryTimeout = 3 * time.Second

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), queryTimeout)
}

// PostgresStore bundles the Postgres repositories into one record store with
// multi-table transaction support.
type PostgresStore struct {
	db *sql.DB
	q  dbtx
}

// NewPostgresStore creates a store over an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

func (s *PostgresStore) Products() ProductRepository {
	return NewPostgresProductRepository(s.q)
}

func (s *PostgresStore) Categories() CategoryRepository {
	return NewPostgresCategoryRepository(s.q)
}

func (s *PostgresStore) Inventory() InventoryRepository {
	return NewPostgresInventoryRepository(s.q)
}

func (s *PostgresStore) Transactions() TransactionRepository {
	return NewPostgresTransactionRepository(s.q)
}

func (s *PostgresStore) Settings() SettingsRepository {
	return NewPostgresSettingsRepository(s.q)
}

func (s *PostgresStore) Users() UserRepository {
	return NewPostgresUserRepository(s.q)
}

// Atomic runs fn inside a single database transaction. The Store passed to fn
// is bound to that transaction; any error rolls every enclosed write back.
func (s *PostgresStore) Atomic(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	scoped := &PostgresStore{db: s.db, q: tx}
	if err := fn(scoped); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Migrate creates the schema. Idempotent; safe to run at startup.
func Migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		sku         TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		category_id TEXT NOT NULL DEFAULT '',
		tags        JSONB,
		attributes  JSONB,
		barcode     TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		parent_id   TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS inventory (
		id            TEXT PRIMARY KEY,
		product_id    TEXT NOT NULL UNIQUE,
		quantity      INTEGER NOT NULL CHECK (quantity >= 0),
		unit          TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		min_quantity  INTEGER NOT NULL DEFAULT 0,
		cost_price    NUMERIC(14,2),
		selling_price NUMERIC(14,2),
		updated_at    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_inventory_product_id ON inventory (product_id);

	CREATE TABLE IF NOT EXISTS transactions (
		id              TEXT PRIMARY KEY,
		product_id      TEXT NOT NULL,
		type            TEXT NOT NULL,
		quantity        INTEGER NOT NULL,
		before_quantity INTEGER NOT NULL,
		after_quantity  INTEGER NOT NULL,
		date            TIMESTAMPTZ NOT NULL,
		notes           TEXT NOT NULL DEFAULT '',
		reference       TEXT NOT NULL DEFAULT '',
		operator        TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_product_date ON transactions (product_id, date);
	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date DESC);

	CREATE TABLE IF NOT EXISTS settings (
		id         TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user'
	);`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
