package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tasks.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "tasks.json", cfg.StoreFile)
}

func TestLoad_OverlaysFile(t *testing.T) {
	p := writeConfig(t, `
store_file = "homework.json"
theme = "mono"
log_level = "debug"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "homework.json", cfg.StoreFile)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	p := writeConfig(t, `colour = "never"`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
	assert.Contains(t, err.Error(), "colour")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	p := writeConfig(t, `
theme = "rainbow"
log_format = "yaml"
`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rainbow")
	assert.Contains(t, err.Error(), "yaml")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate_EmptyStoreFile(t *testing.T) {
	cfg := Default()
	cfg.StoreFile = "  "
	assert.Error(t, cfg.Validate())
}
