package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/config"
)

func TestLoadFrom_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Storage.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Demo.Enabled)
}

func TestLoadFrom_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferias.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
storage:
  data_dir: /tmp/ferias-data
logging:
  level: debug
`), 0o600))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/ferias-data", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.True(t, cfg.Demo.Enabled)
}

func TestLoadFrom_EnvWinsOverYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferias.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))

	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_URL", "postgres://remote/db")
	t.Setenv("FERIAS_DEMO_ENABLED", "false")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "postgres://remote/db", cfg.Storage.DatabaseURL)
	assert.False(t, cfg.Demo.Enabled)
}

func TestLoadFrom_RejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "-1")
	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
