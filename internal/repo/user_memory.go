package repo

import (
	"sync"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

// CreateUser adds a new user account.
func (r *InMemoryUserRepository) CreateUser(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	user.ID = uuid.NewString()
	r.users = append(r.users, user)
	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
