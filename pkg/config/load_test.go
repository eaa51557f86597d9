package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "http://localhost:8081", cfg.ExternalSystem.URL)
	assert.Equal(t, 5*time.Second, cfg.ExternalSystem.Timeout)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "[bankaccount]", cfg.Log.Prefix)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("EXTERNAL_SYSTEM_URL", "http://status.internal")
	t.Setenv("EXTERNAL_SYSTEM_TIMEOUT", "750ms")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, "http://status.internal", cfg.ExternalSystem.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.ExternalSystem.Timeout)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_EnvFileFoundInParentDirectory(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".env.test"),
		[]byte("SERVER_PORT=4321\nLOG_FORMAT=text\n"),
		0o600,
	))
	t.Chdir(child)
	// godotenv never overrides variables that are already set, and t.Setenv
	// restores them afterwards.
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := Load("missing.env", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, 4321, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_DRIVER")
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue(""))
	assert.Equal(t, "****", maskValue("secret"))
	assert.Equal(t, "po****able", maskValue("postgres://u:p@h/db?sslmode=disable"))
}

func TestFindEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.env"), []byte("APP_ENV=test\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(nested, "dir.env"), 0o755))
	t.Chdir(nested)

	t.Run("found in an ancestor", func(t *testing.T) {
		path, err := findEnvFile("app.env")
		require.NoError(t, err)
		assert.Equal(t, "app.env", filepath.Base(path))
	})

	t.Run("absolute path", func(t *testing.T) {
		abs := filepath.Join(root, "app.env")
		path, err := findEnvFile(abs)
		require.NoError(t, err)
		assert.Equal(t, abs, path)
	})

	t.Run("directories are skipped", func(t *testing.T) {
		_, err := findEnvFile("dir.env")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := findEnvFile("definitely-not-here.env")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
