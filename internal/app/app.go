package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/config"
	"github.com/five82/flightboard/internal/flights"
	"github.com/five82/flightboard/internal/logging"
	"github.com/five82/flightboard/internal/server"
	"github.com/five82/flightboard/internal/theme"
	"github.com/five82/flightboard/internal/ui"
)

// Options configure the flightboard application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses default ~/.config/flightboard/prefs.toml
	RefreshEvery time.Duration // zero uses the configured interval
	Listen       string        // serve mode address; empty uses the configured one
}

// Run boots the flight board TUI and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file.
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	ctrl := board.New(src, board.Options{
		Logger:       logger.Named("board"),
		RefreshEvery: cfg.RefreshInterval,
		Debounce:     debounce(cfg.SearchDebounce),
		SearchMode:   cfg.SearchMode,
		Sort:         cfg.Sort,
		View:         cfg.View,
	})
	defer func() { _ = ctrl.Close() }()

	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("start board: %w", err)
	}
	logger.Infow("board started", "source", cfg.Source, "view", cfg.View, "refresh", cfg.RefreshInterval)

	themes := theme.NewStore(theme.Options{
		PrefsPath: opts.PrefsPath,
		Logger:    logger.Named("theme"),
	})

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: ctrl,
		Theme:      themes,
		Logger:     logger.Named("ui"),
		LogPath:    cfg.LogFile,
	})
}

// Serve runs the flights HTTP API on the simulated source until the context
// is cancelled.
func Serve(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Options{
		Source:    flights.NewMockSource(mockOptions(cfg)),
		CacheTTL:  cfg.CacheTTL,
		RateLimit: cfg.RateLimit,
		Logger:    logger.Named("server"),
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}
	if err := srv.Run(ctx, cfg.Listen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshInterval = opts.RefreshEvery
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	return cfg, nil
}

// newSource builds the flight source named by the config.
func newSource(cfg config.Config) (flights.Source, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		src, err := flights.NewHTTPSource(cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("init http source: %w", err)
		}
		return src, nil
	default:
		return flights.NewMockSource(mockOptions(cfg)), nil
	}
}

// mockOptions maps config values onto MockOptions. A zero latency or drift
// in the config disables the feature, while zero in MockOptions selects the
// default, so disabled values become negative.
func mockOptions(cfg config.Config) flights.MockOptions {
	opts := flights.MockOptions{
		Latency:     cfg.Latency,
		Drift:       cfg.Drift,
		FailureRate: cfg.FailureRate,
	}
	if opts.Latency <= 0 {
		opts.Latency = -1
	}
	if opts.Drift <= 0 {
		opts.Drift = -1
	}
	return opts
}

// debounce maps a zero configured quiet period to immediate application.
func debounce(d time.Duration) time.Duration {
	if d <= 0 {
		return -1
	}
	return d
}
