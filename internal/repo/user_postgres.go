package repo

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/smartstock/stock-ledger/internal/models"
)

// PostgresUserRepository is a Postgres-backed UserRepository.
type PostgresUserRepository struct {
	db dbtx
}

func NewPostgresUserRepository(db dbtx) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(user models.User) (models.User, error) {
	query := `INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`
	ctx, cancel := queryContext()
	defer cancel()

	user.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.Role); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicatedValueUnique
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *PostgresUserRepository) GetByUsername(username string) (models.User, error) {
	query := `SELECT id, username, password_hash, role FROM users WHERE username = $1`
	ctx, cancel := queryContext()
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}
