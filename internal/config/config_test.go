package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("GROCERY_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROCERY_JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROCERY_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.LoginMaxFailures)
	assert.Equal(t, 15*time.Minute, cfg.LoginLockout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROCERY_JWT_SECRET", "test-secret")
	t.Setenv("GROCERY_ADDR", ":9090")
	t.Setenv("GROCERY_TOKEN_TTL", "2h")
	t.Setenv("GROCERY_LOGIN_MAX_FAILURES", "3")
	t.Setenv("GROCERY_LOGIN_LOCKOUT", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.LoginMaxFailures)
	assert.Equal(t, 30*time.Minute, cfg.LoginLockout)
}
