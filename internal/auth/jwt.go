package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartstock/stock-ledger/internal/models"
)

var jwtSecret = []byte("dev-secret-change-me")

// SetSecret overrides the signing secret. Called once at startup from config.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateToken issues a short-lived token for a user.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a signed token string.
func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims extracts the claims from a Bearer authorization header.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, errors.New("missing or invalid authorization header")
	}
	token, err := ParseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil || !token.Valid {
		return nil, nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("unexpected claims type")
	}
	return token, claims, nil
}
