package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartstock/stock-ledger/internal/auth"
	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

// RegisterUserHandler godoc
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "Username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Username taken"
// @Router /register [post]
func RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var req UserLogin
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "could not process password", http.StatusInternalServerError)
		return
	}

	user, err := store.Users().CreateUser(models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         "operator",
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		writeError(w, err)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token})
}

// LoginHandler godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "Username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req UserLogin
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := store.Users().GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		writeError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
