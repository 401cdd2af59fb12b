package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HEALTH_CALC_PORT", "")
	t.Setenv("HEALTH_CALC_HOST", "")
	t.Setenv("HEALTH_CALC_DB_PATH", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, 8012, cfg.Port)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "0.0.0.0:8012", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HEALTH_CALC_PORT", "9100")
	t.Setenv("HEALTH_CALC_HOST", "127.0.0.1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "HEALTH_CALC_FOOD_CATALOG"
	_, preset := os.LookupEnv(key)
	require.False(t, preset, "%s must be unset for this test", key)
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=/etc/foods.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/foods.yaml", cfg.CatalogPath)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HEALTH_CALC_PORT", "eighty")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("HEALTH_CALC_PORT", "70000")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Transport: "stdio", Port: 80, DBPath: "x"}
	assert.Error(t, cfg.Validate())

	cfg.Transport = "http"
	assert.NoError(t, cfg.Validate())

	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())
}
