package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("LATENCY_SCALE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 1.0, cfg.Latency.Scale)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.False(t, cfg.Assistant.Enabled())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("LATENCY_SCALE", "0")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 0.0, cfg.Latency.Scale)
	assert.Equal(t, "legacy-key", cfg.Assistant.APIKey)
	assert.True(t, cfg.Assistant.Enabled())
	assert.Equal(t, 90*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")

	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "неизвестный драйвер", key: "STORAGE_DRIVER", val: "cassandra"},
		{name: "отрицательная задержка", key: "LATENCY_SCALE", val: "-1"},
		{name: "слишком маленький cost", key: "AUTH_BCRYPT_COST", val: "2"},
		{name: "кэш поверх памяти", key: "STORAGE_CACHE", val: "redis"},
		{name: "неизвестный кэш", key: "STORAGE_CACHE", val: "memcached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Database: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", c.DSN())
}
