package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AUTO_MIGRATE", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []byte("s3cret"), cfg.JWTSecret)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.UsingDevSecret())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "one day")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL", "")
	t.Setenv("BCRYPT_COST", "high")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}
