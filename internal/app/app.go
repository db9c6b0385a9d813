package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logger"
	"github.com/five82/folio/internal/nav"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/router"
	"github.com/five82/folio/internal/ui"
)

// Options configure the Folio application. Empty fields fall back to the
// config file, then to built-in defaults.
type Options struct {
	ConfigPath string
	EnvFile    string
	PrefsPath  string // empty uses default ~/.config/folio/prefs.toml
	StartPath  string
	CatalogURL string
}

// LoadConfig resolves configuration: dotenv file, TOML file, FOLIO_*
// environment, then command-line overrides from opts.
func LoadConfig(opts Options) (config.Config, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if v := strings.TrimSpace(opts.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(opts.StartPath); v != "" {
		cfg.StartPath = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Routes returns the route table after checking every menu link resolves.
func Routes() (*router.Table, error) {
	table := router.DefaultTable()
	if err := nav.CheckLinks(table, nav.Primary(), nav.Create()); err != nil {
		return nil, fmt.Errorf("check menu: %w", err)
	}
	return table, nil
}

// Run boots the Folio TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logger.New("folio", cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	table, err := Routes()
	if err != nil {
		return err
	}

	client, err := catalog.NewClient(cfg.CatalogURL, cfg.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	log.Info().
		Str("catalog", client.BaseURL()).
		Str("start", cfg.StartPath).
		Str("theme", userPrefs.Theme).
		Msg("folio starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Books:     client,
		Logger:    log,
		Table:     table,
		StartPath: cfg.StartPath,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
	if err != nil {
		log.Error().Err(err).Msg("ui exited")
		return err
	}
	log.Info().Msg("folio stopped")
	return nil
}
