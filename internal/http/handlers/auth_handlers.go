package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

// RegisterHandler godoc
// @Summary Register a new user and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}
	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		http.Error(w, "username or password too short", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	token, err := guard.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{
		Message: "user registered",
		Token:   token,
	})
}

// LoginHandler godoc
// @Summary Authenticate user and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 429 {string} string "Account temporarily locked"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if locked := loginLockedOut(credentials.Username); locked {
		http.Error(w, "too many failed attempts, try again later", http.StatusTooManyRequests)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		registerLoginFailure(credentials.Username)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		registerLoginFailure(credentials.Username)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	clearLoginFailures(credentials.Username)

	token, err := guard.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}

// Lockout tracking degrades to a no-op when Redis is not wired or is down;
// an unavailable tracker must never turn into a denial of service.
func loginLockedOut(username string) bool {
	if redisSvc == nil || username == "" {
		return false
	}
	locked, err := redisSvc.IsLoginLocked(username, loginMaxFailures)
	if err != nil {
		slog.Warn("login lockout check failed", "error", err)
		return false
	}
	return locked
}

func registerLoginFailure(username string) {
	if redisSvc == nil || username == "" {
		return
	}
	if _, err := redisSvc.RegisterLoginFailure(username, loginLockout); err != nil {
		slog.Warn("failed to record login failure", "error", err)
	}
}

func clearLoginFailures(username string) {
	if redisSvc == nil || username == "" {
		return
	}
	if err := redisSvc.ClearLoginFailures(username); err != nil {
		slog.Warn("failed to clear login failures", "error", err)
	}
}
