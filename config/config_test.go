package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LEDGER_PATH", "MENU_PATH", "LOG_LEVEL", "CATEGORIES"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "expenses.csv", cfg.LedgerPath)
	assert.NotEmpty(t, cfg.Categories)
	assert.True(t, cfg.CategorySet().Contains("Food"))
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `categories:
  - Groceries
  - Travel
ledger_path: /tmp/my-expenses.csv
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries", "Travel"}, cfg.Categories)
	assert.Equal(t, "/tmp/my-expenses.csv", cfg.LedgerPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	// fields absent from the file keep their defaults
	assert.Equal(t, "menu/menu.json", cfg.MenuPath)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_PATH", "/tmp/override.csv")
	t.Setenv("CATEGORIES", "Food, Travel ,,Books")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.csv", cfg.LedgerPath)
	assert.Equal(t, []string{"Food", "Travel", "Books"}, cfg.Categories)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Categories = nil
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LedgerPath = "  "
	assert.Error(t, cfg.Validate())
}
