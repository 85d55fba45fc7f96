package http

import (
	"context"
	"net"
	"net/http"

	"github.com/smartstock/stock-ledger/internal/auth"
	"github.com/smartstock/stock-ledger/internal/http/rate_limiter"
)

type contextKey string

const (
	userIDKey   = contextKey("user_id")
	usernameKey = contextKey("username")
)

// AuthMiddleware rejects requests without a valid bearer token and stashes
// the caller's identity in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if sub, ok := claims["sub"].(string); ok {
			ctx = context.WithValue(ctx, userIDKey, sub)
		}
		if username, ok := claims["username"].(string); ok {
			ctx = context.WithValue(ctx, usernameKey, username)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user's ID, or "" for anonymous requests.
func GetUserID(r *http.Request) string {
	if val, ok := r.Context().Value(userIDKey).(string); ok {
		return val
	}
	return ""
}

// GetUsername returns the authenticated username, or "" for anonymous requests.
func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

// RateLimitMiddleware throttles clients per IP using the given registry.
func RateLimitMiddleware(registry *rate_limiter.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !registry.Visitor(ip).Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
