package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort     string
	BaseURL     string
	DatabaseURL string
	DBMigrate   bool
	RedisAddr   string
	CacheTTL    time.Duration
	CodeBytes   int
	MaxAttempts int
	NodeID      int64
	LogLevel    string
}

// Load reads ./config/<env>.yaml when present and lets the process
// environment override every key.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("./config")
	v.SetConfigType("yaml")
	switch env := os.Getenv("APP_ENV"); env {
	case "docker":
		v.SetConfigName("docker")
	default:
		v.SetConfigName("local")
	}

	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("BASE_URL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MIGRATE", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("CODE_BYTES", 3)
	v.SetDefault("MAX_ATTEMPTS", 32)
	v.SetDefault("NODE_ID", 1)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		AppPort:     v.GetString("APP_PORT"),
		BaseURL:     v.GetString("BASE_URL"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBMigrate:   v.GetBool("DB_MIGRATE"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		CacheTTL:    v.GetDuration("CACHE_TTL"),
		CodeBytes:   v.GetInt("CODE_BYTES"),
		MaxAttempts: v.GetInt("MAX_ATTEMPTS"),
		NodeID:      v.GetInt64("NODE_ID"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	if cfg.CodeBytes <= 0 {
		return nil, errors.New("CODE_BYTES must be positive")
	}
	if cfg.MaxAttempts < 0 {
		return nil, errors.New("MAX_ATTEMPTS must not be negative")
	}

	return cfg, nil
}
