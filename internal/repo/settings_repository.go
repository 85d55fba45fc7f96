package repo

import "github.com/smartstock/stock-ledger/internal/models"

// SettingsRepository stores application preference rows keyed by a
// caller-chosen ID. Put inserts or replaces.
type SettingsRepository interface {
	Put(setting models.Setting) error
	Get(id string) (models.Setting, error)
	GetAll() ([]models.Setting, error)
	Clear() error
	BulkInsert(settings []models.Setting) error
}
