package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOODAPP_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Empty(t, cfg.RedisAddr, "rate limiting off by default")
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("FOODAPP_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FOODAPP_JWT_SECRET", "test-secret")
	t.Setenv("FOODAPP_SERVER_PORT", "9090")
	t.Setenv("FOODAPP_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}
