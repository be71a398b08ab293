package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.AppPort)
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.False(t, cfg.DBMigrate)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.CodeBytes)
	assert.Equal(t, 32, cfg.MaxAttempts)
	assert.Equal(t, int64(1), cfg.NodeID)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", ":8080")
	t.Setenv("BASE_URL", "https://sho.rt")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/urls?sslmode=disable")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("CODE_BYTES", "4")
	t.Setenv("MAX_ATTEMPTS", "0")
	t.Setenv("NODE_ID", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		AppPort:     ":8080",
		BaseURL:     "https://sho.rt",
		DatabaseURL: "postgres://u:p@db:5432/urls?sslmode=disable",
		DBMigrate:   true,
		RedisAddr:   "redis:6379",
		CacheTTL:    time.Hour,
		CodeBytes:   4,
		MaxAttempts: 0,
		NodeID:      7,
		LogLevel:    "debug",
	}, cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero code bytes", key: "CODE_BYTES", value: "0"},
		{name: "negative attempts", key: "MAX_ATTEMPTS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
