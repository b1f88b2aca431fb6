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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := loadFrom(filepath.Join(t.TempDir(), "config.toml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsValues(t *testing.T) {
	path := writeConfig(t, "theme = \"ocean\"\nno_color = true\n")

	cfg := loadFrom(path)
	assert.Equal(t, "ocean", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Minimal)
	assert.False(t, cfg.NoArt)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := writeConfig(t, "theme = [broken\n")

	assert.Equal(t, Default(), loadFrom(path))
}

func TestLoadKeepsUnknownThemeName(t *testing.T) {
	// Theme resolution, not loading, decides what unknown names mean.
	path := writeConfig(t, "theme = \"neon\"\n")

	assert.Equal(t, "neon", loadFrom(path).Theme)
}

func TestLoadEmptyThemeFallsBack(t *testing.T) {
	path := writeConfig(t, "theme = \"\"\nminimal = true\n")

	cfg := loadFrom(path)
	assert.Equal(t, "rust", cfg.Theme)
	assert.True(t, cfg.Minimal)
}

func TestPathUnderConfigHome(t *testing.T) {
	assert.Contains(t, Path(), filepath.Join("ferris-fetch", "config.toml"))
}
