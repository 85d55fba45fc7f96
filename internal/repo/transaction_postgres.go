package repo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresTransactionRepository is a Postgres-backed TransactionRepository.
// The implementation issues INSERT and SELECT only; the append-only contract
// has no UPDATE or DELETE statements for ledger rows outside the restore path.
type PostgresTransactionRepository struct {
	db dbtx
}

func NewPostgresTransactionRepository(db dbtx) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Append(tx models.Transaction) (models.Transaction, error) {
	tx.ID = uuid.NewString()
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	if err := r.insert(tx); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to append transaction: %w", err)
	}
	return tx, nil
}

func (r *PostgresTransactionRepository) insert(tx models.Transaction) error {
	query := `INSERT INTO transactions (id, product_id, type, quantity, before_quantity, after_quantity, date, notes, reference, operator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.BeforeQuantity, tx.AfterQuantity,
		tx.Date, tx.Notes, tx.Reference, tx.Operator)
	return err
}

const transactionColumns = `id, product_id, type, quantity, before_quantity, after_quantity, date, notes, reference, operator`

func (r *PostgresTransactionRepository) queryTransactions(query string, args ...any) ([]models.Transaction, error) {
	ctx, cancel := queryContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.ProductID, &tx.Type, &tx.Quantity,
			&tx.BeforeQuantity, &tx.AfterQuantity, &tx.Date, &tx.Notes, &tx.Reference, &tx.Operator); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *PostgresTransactionRepository) Recent(limit int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC LIMIT $1`
	return r.queryTransactions(query, limit)
}

func (r *PostgresTransactionRepository) GetByProductID(productID string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE product_id = $1 ORDER BY date`
	return r.queryTransactions(query, productID)
}

func (r *PostgresTransactionRepository) GetAll() ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date`
	return r.queryTransactions(query)
}

func (r *PostgresTransactionRepository) Clear() error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	return err
}

func (r *PostgresTransactionRepository) BulkInsert(txs []models.Transaction) error {
	for _, tx := range txs {
		if err := r.insert(tx); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
		}
	}
	return nil
}
