package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "jwt_secret")
		t.Setenv("BLOB_DIR", "/tmp/blobs")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_SSLMODE", "require")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "jwt_secret", cfg.JWTSecret)
		assert.Equal(t, "/tmp/blobs", cfg.BlobDir)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "require", cfg.DBSSLMode)
	})

	t.Run("Defaults for optional values", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "")
		t.Setenv("LOCAL_STORE_PATH", "")
		t.Setenv("BLOB_BASE_URL", "")
		t.Setenv("ADMIN_USERNAME", "")
		t.Setenv("ADMIN_PASSWORD", "")
		t.Setenv("DB_SSLMODE", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "./ayushyaa.db", cfg.LocalStorePath)
		assert.Equal(t, "/uploads", cfg.BlobBaseURL)
		assert.Equal(t, "admin", cfg.AdminUsername)
		assert.Equal(t, "admin", cfg.AdminPassword)
		assert.Equal(t, "disable", cfg.DBSSLMode)
	})
}
