// Package auth resolves bearer tokens to owner identities. Every request
// passes through the guard; the identity it produces is the scoping key for
// all catalog and ledger access.
package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

// The taxonomy is for diagnostics only. Callers must collapse all three into
// one "not authenticated" response so error text cannot be used to probe
// which sub-check failed.
var (
	ErrMissingToken     = errors.New("missing authentication token")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrIdentityNotFound = errors.New("token subject no longer exists")
)

// Identity is a resolved caller identity.
type Identity struct {
	UserID   string
	Username string
}

// Config carries the guard's signing configuration. There is no fallback
// secret; construction fails when none is supplied.
type Config struct {
	Secret   []byte
	TokenTTL time.Duration
}

const defaultTokenTTL = 24 * time.Hour

// Guard validates tokens and resolves their subject to a live user record.
type Guard struct {
	secret []byte
	ttl    time.Duration
	users  repo.UserRepository
	logger *slog.Logger
}

func NewGuard(cfg Config, users repo.UserRepository, logger *slog.Logger) (*Guard, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("auth: signing secret must be configured")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Guard{secret: cfg.Secret, ttl: ttl, users: users, logger: logger}, nil
}

// GenerateToken mints a signed token for the given user.
func (g *Guard) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(g.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Authenticate verifies the raw bearer token and resolves its subject to an
// existing user. Deleting a user revokes every token issued to it.
func (g *Guard) Authenticate(rawToken string) (Identity, error) {
	if rawToken == "" {
		g.audit("", ErrMissingToken)
		return Identity{}, ErrMissingToken
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		g.audit("", ErrInvalidToken)
		return Identity{}, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		g.audit("", ErrInvalidToken)
		return Identity{}, ErrInvalidToken
	}

	user, err := g.users.GetByID(sub)
	if err != nil {
		g.audit(sub, ErrIdentityNotFound)
		return Identity{}, ErrIdentityNotFound
	}

	g.audit(user.ID, nil)
	return Identity{UserID: user.ID, Username: user.Username}, nil
}

func (g *Guard) audit(userID string, outcome error) {
	if outcome == nil {
		g.logger.Info("authentication succeeded", "user_id", userID)
		return
	}
	g.logger.Warn("authentication failed", "user_id", userID, "reason", outcome.Error())
}
