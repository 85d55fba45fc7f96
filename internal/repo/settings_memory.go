package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemorySettingsRepository is an in-memory implementation of SettingsRepository.
type InMemorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]models.Setting
}

// NewInMemorySettingsRepository creates a new instance of InMemorySettingsRepository.
func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{settings: map[string]models.Setting{}}
}

// Put inserts or replaces a setting row.
func (r *InMemorySettingsRepository) Put(setting models.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	setting.UpdatedAt = time.Now().UTC()
	r.settings[setting.ID] = setting
	return nil
}

// Get retrieves a setting by its ID.
func (r *InMemorySettingsRepository) Get(id string) (models.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[id]
	if !ok {
		return models.Setting{}, ErrSettingNotFound
	}
	return s, nil
}

// GetAll retrieves every setting row, ordered by ID.
func (r *InMemorySettingsRepository) GetAll() ([]models.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Setting, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Clear removes every setting.
func (r *InMemorySettingsRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = map[string]models.Setting{}
	return nil
}

// BulkInsert inserts settings keeping their IDs and timestamps.
func (r *InMemorySettingsRepository) BulkInsert(settings []models.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range settings {
		r.settings[s.ID] = s
	}
	return nil
}
