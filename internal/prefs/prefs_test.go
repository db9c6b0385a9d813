package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, DefaultTheme, Load("").Theme)
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "folio")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644))

	assert.Equal(t, "Slate", Load("").Theme)
}

func TestLoad_InvalidTOMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = ["), 0o644))

	assert.Equal(t, DefaultTheme, Load(path).Theme)
}

func TestLoad_BlankThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"  \"\n"), 0o644))

	assert.Equal(t, DefaultTheme, Load(path).Theme)
}

func TestSave_RoundTripsThroughNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	require.NoError(t, Save(path, Prefs{Theme: "Nightfox"}))
	assert.Equal(t, "Nightfox", Load(path).Theme)
}
