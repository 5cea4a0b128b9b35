package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	envKeys := []string{
		"SERVER_PORT", "SERVER_MODE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME",
		"JWT_SECRET", "JWT_ACCESS_TOKEN_EXPIRATION", "JWT_REFRESH_TOKEN_EXPIRATION", "JWT_ISSUER",
		"LOG_LEVEL", "LOG_FORMAT",
	}

	original := map[string]string{}
	for _, k := range envKeys {
		original[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range original {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for _, k := range envKeys {
			os.Unsetenv(k)
		}
	}

	t.Run("loads defaults when no file and only secret set", func(t *testing.T) {
		clearEnv()
		os.Setenv("JWT_SECRET", "test-secret")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Mode)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "studygroup", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, "studygroup.app", cfg.JWT.Issuer)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		clearEnv()
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.internal")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte("server:\n  port: \"8000\"\ndatabase:\n  host: filedb\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	})

	t.Run("fails without JWT secret", func(t *testing.T) {
		clearEnv()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("fails on bad expiration format", func(t *testing.T) {
		clearEnv()
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "soon")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	assert.Equal(t,
		"postgres://postgres:pw@localhost:5432/studygroup?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
