package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/nav"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"FOLIO_CATALOG_URL", "FOLIO_REQUEST_TIMEOUT", "FOLIO_LOG_FILE", "FOLIO_START_PATH"} {
		t.Setenv(key, "")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig(Options{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.CatalogURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/", cfg.StartPath)
}

func TestLoadConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	home := isolateEnv(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`catalog_url = "http://file:1"
start_path = "/authors"
`), 0o600))
	t.Setenv("FOLIO_CATALOG_URL", "http://env:2")

	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.CatalogURL)
	assert.Equal(t, "/authors", cfg.StartPath)

	cfg, err = LoadConfig(Options{ConfigPath: path, CatalogURL: " http://flag:3 ", StartPath: "/books"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3", cfg.CatalogURL)
	assert.Equal(t, "/books", cfg.StartPath)
}

func TestLoadConfig_FlagReplacesBadFileValue(t *testing.T) {
	home := isolateEnv(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`catalog_url = "ftp://old"
start_path = "books"
`), 0o600))

	_, err := LoadConfig(Options{ConfigPath: path})
	require.ErrorIs(t, err, config.ErrInvalidCatalogURL)

	cfg, err := LoadConfig(Options{ConfigPath: path, CatalogURL: "http://good:3000", StartPath: "/books"})
	require.NoError(t, err)
	assert.Equal(t, "http://good:3000", cfg.CatalogURL)
	assert.Equal(t, "/books", cfg.StartPath)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	home := isolateEnv(t)
	envFile := filepath.Join(home, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOLIO_REQUEST_TIMEOUT=750ms\n"), 0o600))

	// godotenv does not override variables that are already set, so drop
	// the empty placeholder first; t.Setenv restores it afterwards.
	require.NoError(t, os.Unsetenv("FOLIO_REQUEST_TIMEOUT"))

	cfg, err := LoadConfig(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	home := isolateEnv(t)

	_, err := LoadConfig(Options{EnvFile: filepath.Join(home, "missing.env")})
	assert.Error(t, err)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	isolateEnv(t)

	_, err := LoadConfig(Options{StartPath: "books"})
	assert.ErrorIs(t, err, config.ErrInvalidStartPath)

	_, err = LoadConfig(Options{CatalogURL: "ftp://library"})
	assert.ErrorIs(t, err, config.ErrInvalidCatalogURL)
}

func TestRoutes_EveryMenuLinkResolves(t *testing.T) {
	table, err := Routes()
	require.NoError(t, err)

	for _, link := range nav.Menu() {
		assert.True(t, table.Has(link.Path), link.Path)
	}
}
