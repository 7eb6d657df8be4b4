package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8091", cfg.ServerPort)
		assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, StorageMemory, cfg.Storage.Backend)
		assert.Equal(t, 7*24*time.Hour, cfg.Storage.SessionTTL)
		assert.True(t, cfg.GuardRecheck)
		assert.NotEmpty(t, cfg.SessionSecret)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("API_BASE_URL", "http://backend/api")
		t.Setenv("API_TIMEOUT", "3s")
		t.Setenv("SESSION_STORAGE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("GUARD_RECHECK", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.ServerPort)
		assert.Equal(t, "http://backend/api", cfg.API.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.API.Timeout)
		assert.Equal(t, StorageRedis, cfg.Storage.Backend)
		assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
		assert.Equal(t, 2, cfg.Storage.Redis.DB)
		assert.False(t, cfg.GuardRecheck)
	})

	t.Run("production requires a session secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("API_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects unknown storage backend", func(t *testing.T) {
		t.Setenv("SESSION_STORAGE", "sqlite")
		_, err := Load()
		assert.Error(t, err)
	})
}
