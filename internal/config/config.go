package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything Folio needs at startup.
type Config struct {
	CatalogURL     string        `env:"FOLIO_CATALOG_URL"`
	RequestTimeout time.Duration `env:"FOLIO_REQUEST_TIMEOUT"`
	LogFile        string        `env:"FOLIO_LOG_FILE"`
	StartPath      string        `env:"FOLIO_START_PATH"`
}

const (
	defaultConfigPath     = "~/.config/folio/config.toml"
	defaultCatalogURL     = "http://localhost:3000"
	defaultRequestTimeout = 10 * time.Second
	defaultLogFile        = "~/.local/state/folio/folio.log"
	defaultStartPath      = "/"
)

var (
	ErrInvalidCatalogURL = errors.New("invalid catalog url")
	ErrInvalidTimeout    = errors.New("invalid request timeout")
	ErrInvalidStartPath  = errors.New("invalid start path")
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		CatalogURL:     defaultCatalogURL,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        MustExpand(defaultLogFile),
		StartPath:      defaultStartPath,
	}
}

// Load reads the TOML config at path (or the default location), then applies
// FOLIO_* environment overrides. A missing file is not an error. The result is
// not validated; callers layer their own overrides first and then call
// Validate.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := mergeFile(&cfg, resolved); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.CatalogURL = strings.TrimSpace(cfg.CatalogURL)
	cfg.StartPath = strings.TrimSpace(cfg.StartPath)
	cfg.LogFile = MustExpand(cfg.LogFile)

	return cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment. Variables that are already set win.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func mergeFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL     string `toml:"catalog_url"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		StartPath      string `toml:"start_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = timeout
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(raw.StartPath); v != "" {
		cfg.StartPath = v
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	raw := c.CatalogURL
	if raw != "" && !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || raw == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidCatalogURL, c.CatalogURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidCatalogURL, u.Scheme)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}
	if !strings.HasPrefix(c.StartPath, "/") {
		return fmt.Errorf("%w: %q must start with /", ErrInvalidStartPath, c.StartPath)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// MustExpand is ExpandPath that returns path unchanged on failure.
func MustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
