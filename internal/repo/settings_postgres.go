package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresSettingsRepository is a Postgres-backed SettingsRepository.
type PostgresSettingsRepository struct {
	db dbtx
}

func NewPostgresSettingsRepository(db dbtx) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Put(setting models.Setting) error {
	query := `INSERT INTO settings (id, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, setting.ID, []byte(setting.Value), time.Now().UTC())
	return err
}

func (r *PostgresSettingsRepository) Get(id string) (models.Setting, error) {
	query := `SELECT id, value, updated_at FROM settings WHERE id = $1`
	ctx, cancel := queryContext()
	defer cancel()

	var s models.Setting
	var value []byte
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Setting{}, ErrSettingNotFound
	}
	if err != nil {
		return models.Setting{}, err
	}
	s.Value = value
	if updatedAt.Valid {
		s.UpdatedAt = updatedAt.Time
	}
	return s, nil
}

func (r *PostgresSettingsRepository) GetAll() ([]models.Setting, error) {
	query := `SELECT id, value, updated_at FROM settings ORDER BY id`
	ctx, cancel := queryContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		var value []byte
		var updatedAt sql.NullTime
		if err := rows.Scan(&s.ID, &value, &updatedAt); err != nil {
			return nil, err
		}
		s.Value = value
		if updatedAt.Valid {
			s.UpdatedAt = updatedAt.Time
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *PostgresSettingsRepository) Clear() error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM settings`)
	return err
}

func (r *PostgresSettingsRepository) BulkInsert(settings []models.Setting) error {
	for _, s := range settings {
		if err := r.Put(s); err != nil {
			return fmt.Errorf("failed to insert setting %s: %w", s.ID, err)
		}
	}
	return nil
}
