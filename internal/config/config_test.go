package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment:         "development",
		DatabaseName:        "assignment_workflow",
		JWTSecret:           "your-secret-key-change-in-production",
		LockBackend:         "memory",
		NotifyBackend:       "log",
		DirectoryBackend:    "static",
		DefaultWindowHours:  8,
		DefaultForecastDays: 30,
		MaxForecastDays:     90,
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid in development", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("default jwt secret rejected in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("redis lock backend requires address", func(t *testing.T) {
		cfg := validConfig()
		cfg.LockBackend = "redis"
		assert.Error(t, validate(cfg))

		cfg.RedisAddr = "localhost:6379"
		assert.NoError(t, validate(cfg))
		assert.True(t, cfg.UsesRedis())
	})

	t.Run("unknown backends rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.DirectoryBackend = "oauth"
		assert.Error(t, validate(cfg))

		cfg = validConfig()
		cfg.NotifyBackend = "smtp"
		assert.Error(t, validate(cfg))
	})

	t.Run("forecast default beyond max rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.DefaultForecastDays = 120
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "postgres",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "assignment_workflow",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://postgres:secret@db:5432/assignment_workflow?sslmode=disable", buildDatabaseURL(cfg))
}
