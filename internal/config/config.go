package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/flights"
)

// Source kinds.
const (
	SourceMock = "mock"
	SourceHTTP = "http"
)

// Config captures everything flightboard reads from config.toml.
type Config struct {
	Source          string
	APIURL          string
	RefreshInterval time.Duration
	Latency         time.Duration // zero disables simulated latency
	Drift           float64       // zero disables status drift
	FailureRate     float64
	SearchDebounce  time.Duration
	SearchMode      board.SearchMode
	Sort            board.SortState // initial board order
	View            flights.ViewMode
	Listen          string
	CacheTTL        time.Duration // zero disables the serve-mode cache
	RateLimit       float64       // requests per second per client
	LogFile         string
	LogLevel        string
}

const (
	defaultConfigPath     = "~/.config/flightboard/config.toml"
	defaultAPIURL         = "127.0.0.1:8088"
	defaultListen         = "127.0.0.1:8088"
	defaultRefreshSeconds = 60
	defaultLatencyMS      = 800
	defaultDrift          = 0.2
	defaultDebounceMS     = 300
	defaultCacheSeconds   = 5
	defaultRateLimit      = 10
	defaultLogFile        = "~/.local/state/flightboard/flightboard.log"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source:          SourceMock,
		APIURL:          defaultAPIURL,
		RefreshInterval: defaultRefreshSeconds * time.Second,
		Latency:         defaultLatencyMS * time.Millisecond,
		Drift:           defaultDrift,
		SearchDebounce:  defaultDebounceMS * time.Millisecond,
		SearchMode:      board.SearchOverride,
		Sort:            board.DefaultSort(),
		View:            flights.Departures,
		Listen:          defaultListen,
		CacheTTL:        defaultCacheSeconds * time.Second,
		RateLimit:       defaultRateLimit,
		LogFile:         mustExpand(defaultLogFile),
		LogLevel:        defaultLogLevel,
	}
}

// Load locates and parses config.toml, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source           string   `toml:"source"`
		APIURL           string   `toml:"api_url"`
		RefreshSeconds   *int     `toml:"refresh_seconds"`
		LatencyMS        *int     `toml:"latency_ms"`
		Drift            *float64 `toml:"drift"`
		FailureRate      *float64 `toml:"failure_rate"`
		SearchDebounceMS *int     `toml:"search_debounce_ms"`
		SearchMode       string   `toml:"search_mode"`
		Sort             string   `toml:"sort"`
		SortDirection    string   `toml:"sort_direction"`
		View             string   `toml:"view"`
		Listen           string   `toml:"listen"`
		CacheSeconds     *int     `toml:"cache_seconds"`
		RateLimit        *float64 `toml:"rate_limit"`
		LogFile          string   `toml:"log_file"`
		LogLevel         string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.ToLower(strings.TrimSpace(raw.Source)); v != "" {
		if v != SourceMock && v != SourceHTTP {
			return Config{}, fmt.Errorf("invalid source %q: want %q or %q", raw.Source, SourceMock, SourceHTTP)
		}
		cfg.Source = v
	}
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.Listen); v != "" {
		cfg.Listen = v
	}
	if raw.RefreshSeconds != nil && *raw.RefreshSeconds > 0 {
		cfg.RefreshInterval = time.Duration(*raw.RefreshSeconds) * time.Second
	}
	if raw.LatencyMS != nil && *raw.LatencyMS >= 0 {
		cfg.Latency = time.Duration(*raw.LatencyMS) * time.Millisecond
	}
	if raw.SearchDebounceMS != nil && *raw.SearchDebounceMS >= 0 {
		cfg.SearchDebounce = time.Duration(*raw.SearchDebounceMS) * time.Millisecond
	}
	if raw.CacheSeconds != nil && *raw.CacheSeconds >= 0 {
		cfg.CacheTTL = time.Duration(*raw.CacheSeconds) * time.Second
	}
	if raw.RateLimit != nil && *raw.RateLimit > 0 {
		cfg.RateLimit = *raw.RateLimit
	}
	if raw.Drift != nil {
		if err := checkProbability("drift", *raw.Drift); err != nil {
			return Config{}, err
		}
		cfg.Drift = *raw.Drift
	}
	if raw.FailureRate != nil {
		if err := checkProbability("failure_rate", *raw.FailureRate); err != nil {
			return Config{}, err
		}
		cfg.FailureRate = *raw.FailureRate
	}

	if strings.TrimSpace(raw.SearchMode) != "" {
		mode, err := board.ParseSearchMode(raw.SearchMode)
		if err != nil {
			return Config{}, fmt.Errorf("invalid search_mode: %w", err)
		}
		cfg.SearchMode = mode
	}
	if strings.TrimSpace(raw.Sort) != "" {
		key, err := board.ParseSortKey(raw.Sort)
		if err != nil {
			return Config{}, fmt.Errorf("invalid sort: %w", err)
		}
		cfg.Sort.Key = key
	}
	if strings.TrimSpace(raw.SortDirection) != "" {
		dir, err := board.ParseDirection(raw.SortDirection)
		if err != nil {
			return Config{}, fmt.Errorf("invalid sort_direction: %w", err)
		}
		cfg.Sort.Direction = dir
	}
	if strings.TrimSpace(raw.View) != "" {
		view, err := flights.ParseViewMode(raw.View)
		if err != nil {
			return Config{}, fmt.Errorf("invalid view: %w", err)
		}
		cfg.View = view
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func checkProbability(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("invalid %s %v: want a value between 0 and 1", name, v)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
