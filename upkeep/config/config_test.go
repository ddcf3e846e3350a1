package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upkeep.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	assert.NoError(t, err)
	assert.Equal(t, ModePrompt, cfg.RunMode)
	assert.True(t, cfg.Logging)
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, "[upkeep]\nrun_mode = full\nlogging = off\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, ModeFull, cfg.RunMode)
	assert.False(t, cfg.Logging)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[upkeep]\nrun_mode = update\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, ModeUpdate, cfg.RunMode)
	assert.True(t, cfg.Logging)
}

func TestLoadInvalidRunMode(t *testing.T) {
	path := writeConfig(t, "[upkeep]\nrun_mode = sometimes\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid run_mode")
}

func TestLoadInvalidLogging(t *testing.T) {
	path := writeConfig(t, "[upkeep]\nlogging = maybe\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid logging value")
}
