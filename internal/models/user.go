package models

// User is an API account. PasswordHash is a bcrypt hash, never the password.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
}
