package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "stakex", cfg.MongoDatabase)
	require.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TOKEN_TTL_SECONDS", "60")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, time.Minute, cfg.TokenTTL)
	require.Equal(t, 12, cfg.BcryptCost) // bad value falls back to default
}
