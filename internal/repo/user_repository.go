package repo

import "github.com/smartstock/stock-ledger/internal/models"

// UserRepository defines the interface for user account storage.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
