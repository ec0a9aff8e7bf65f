package app

import (
	"context"
	"fmt"
	"time"

	"github.com/marquee-tv/marquee/internal/config"
	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/logging"
	"github.com/marquee-tv/marquee/internal/player"
	"github.com/marquee-tv/marquee/internal/prefs"
	"github.com/marquee-tv/marquee/internal/state"
	"github.com/marquee-tv/marquee/internal/ui"
)

// Options configure the marquee watch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	LibraryURL string // overrides config when set
	PollEvery  int    // seconds; zero uses config, then default
	PlayerName string // overrides config when set
}

// Run boots the marquee TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LibraryURL != "" {
		cfg.LibraryURL = opts.LibraryURL
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if opts.PlayerName != "" {
		cfg.Player = opts.PlayerName
	}

	if err := logging.Setup(cfg.LogPath, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := library.NewClient(cfg.LibraryURL)
	if err != nil {
		return fmt.Errorf("init library client: %w", err)
	}

	backend, err := player.Detect(cfg.Player)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Stop() }()

	store := &state.Store{}

	interval := defaultPollInterval
	if cfg.PollSeconds > 0 {
		interval = time.Duration(cfg.PollSeconds) * time.Second
	}
	StartPoller(ctx, store, client, interval)

	logging.L().WithField("library", cfg.LibraryURL).WithField("player", backend.Name()).Info("marquee starting")

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Player:    backend,
		LogPath:   cfg.LogPath,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
