package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Port:           "8080",
		SessionSecret:  "warbler-dev-secret-change-in-production",
		SessionTTLDays: 7,
		DBDriver:       "postgres",
		DBPassword:     "password",
		Env:            "development",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Development Defaults Pass", func(t *testing.T) {
		assert.NoError(t, baseConfig().Validate())
	})

	t.Run("Missing Port", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing Session Secret", func(t *testing.T) {
		cfg := baseConfig()
		cfg.SessionSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DBDriver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Sqlite Driver Allowed", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DBDriver = "sqlite"
		cfg.DBPath = "warbler.db"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Non-positive TTL", func(t *testing.T) {
		cfg := baseConfig()
		cfg.SessionTTLDays = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigValidateProduction(t *testing.T) {
	productionConfig := func() *Config {
		cfg := baseConfig()
		cfg.Env = "production"
		cfg.SessionSecret = strings.Repeat("s", 32)
		cfg.DBPassword = "a-strong-production-password"
		cfg.DBSSLMode = "require"
		return cfg
	}

	t.Run("Strict Config Passes", func(t *testing.T) {
		assert.NoError(t, productionConfig().Validate())
	})

	t.Run("Default Session Secret Rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.SessionSecret = "warbler-dev-secret-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Short Session Secret Rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.SessionSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Weak DB Password Rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}
