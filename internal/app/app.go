package app

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/five82/gallery/internal/config"
	"github.com/five82/gallery/internal/logging"
	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/rest"
	"github.com/five82/gallery/internal/screens"
	"github.com/five82/gallery/internal/ui"
)

// Options configure the gallery application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gallery/prefs.toml
	BaseURL    string
	Timeout    time.Duration
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer func() { _ = closer.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client := rest.NewClient(
		rest.WithTimeout(cfg.Timeout),
		rest.WithLogger(logger.With().Str("component", "rest").Logger()),
	)
	service := photos.NewService(client, cfg.BaseURL)

	router := ui.NewRouter(ctx, service, logger)
	list := screens.NewList(service, router, logger)

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Dur("auto_refresh", cfg.AutoRefresh).
		Msg("gallery starting")

	if cfg.AutoRefresh > 0 {
		StartRefresher(ctx, list, cfg.AutoRefresh, logger)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		List:      list,
		Router:    router,
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		LogPath:   cfg.LogFile,
	})
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		if err := config.ValidateBaseURL(base); err != nil {
			return errors.Wrap(err, "base url flag")
		}
		cfg.BaseURL = base
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	return nil
}
