package config_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Rejections(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("PGSQL_URL", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("memory in production", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("IS_PRODUCTION", "true")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("missing secret in production", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("PGSQL_URL", "postgres://localhost/ledger")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
