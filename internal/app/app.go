package app

import (
	"context"
	"fmt"

	"github.com/five82/tripdesk/internal/config"
	"github.com/five82/tripdesk/internal/logging"
	"github.com/five82/tripdesk/internal/prefs"
	"github.com/five82/tripdesk/internal/state"
	"github.com/five82/tripdesk/internal/ui"
	"github.com/five82/tripdesk/internal/users"
)

// Options configure the tripdesk application.
type Options struct {
	ConfigPath string // empty uses ~/.config/tripdesk/config.toml
	PrefsPath  string // empty uses ~/.config/tripdesk/prefs.toml
	Endpoint   string // overrides the configured endpoint when set
}

// Run boots the tripdesk TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", "error", err)
	}

	endpoint := cfg.Endpoint
	if opts.Endpoint != "" {
		endpoint = opts.Endpoint
	}
	client, err := users.NewClient(endpoint, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init users client: %w", err)
	}

	store := &state.Store{}
	logger.Info("tripdesk starting", "endpoint", client.Endpoint(), "page_size", cfg.PageSize)

	uiOpts := ui.Options{
		Context: ctx,
		Load: func(ctx context.Context) state.Snapshot {
			return Load(ctx, client, store, logger)
		},
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("tripdesk stopped")
	return nil
}
