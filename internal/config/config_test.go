package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/flights"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceMock {
		t.Fatalf("Source = %q, want %q", cfg.Source, SourceMock)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.RefreshInterval != 60*time.Second {
		t.Fatalf("RefreshInterval = %v, want 60s", cfg.RefreshInterval)
	}
	if cfg.Latency != 800*time.Millisecond {
		t.Fatalf("Latency = %v, want 800ms", cfg.Latency)
	}
	if cfg.Drift != 0.2 {
		t.Fatalf("Drift = %v, want 0.2", cfg.Drift)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 300ms", cfg.SearchDebounce)
	}
	if cfg.SearchMode != board.SearchOverride {
		t.Fatalf("SearchMode = %q, want %q", cfg.SearchMode, board.SearchOverride)
	}
	if cfg.View != flights.Departures {
		t.Fatalf("View = %q, want %q", cfg.View, flights.Departures)
	}
	if cfg.Sort != board.DefaultSort() {
		t.Fatalf("Sort = %+v, want %+v", cfg.Sort, board.DefaultSort())
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
source = " HTTP "
api_url = "  10.0.0.5:9999  "
refresh_seconds = 15
latency_ms = 0
drift = 0.5
failure_rate = 0.25
search_debounce_ms = 100
search_mode = "compose"
sort = " Gate "
sort_direction = "DESC"
view = "arrivals"
listen = ":9090"
cache_seconds = 0
rate_limit = 2.5
log_file = "  ~/logs/board.log  "
log_level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceHTTP {
		t.Fatalf("Source = %q, want %q", cfg.Source, SourceHTTP)
	}
	if cfg.APIURL != "10.0.0.5:9999" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "10.0.0.5:9999")
	}
	if cfg.RefreshInterval != 15*time.Second {
		t.Fatalf("RefreshInterval = %v, want 15s", cfg.RefreshInterval)
	}
	if cfg.Latency != 0 {
		t.Fatalf("Latency = %v, want 0", cfg.Latency)
	}
	if cfg.Drift != 0.5 || cfg.FailureRate != 0.25 {
		t.Fatalf("Drift/FailureRate = %v/%v, want 0.5/0.25", cfg.Drift, cfg.FailureRate)
	}
	if cfg.SearchDebounce != 100*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 100ms", cfg.SearchDebounce)
	}
	if cfg.SearchMode != board.SearchCompose {
		t.Fatalf("SearchMode = %q, want %q", cfg.SearchMode, board.SearchCompose)
	}
	if want := (board.SortState{Key: board.KeyGate, Direction: board.Desc}); cfg.Sort != want {
		t.Fatalf("Sort = %+v, want %+v", cfg.Sort, want)
	}
	if cfg.View != flights.Arrivals {
		t.Fatalf("View = %q, want %q", cfg.View, flights.Arrivals)
	}
	if cfg.Listen != ":9090" {
		t.Fatalf("Listen = %q, want %q", cfg.Listen, ":9090")
	}
	if cfg.CacheTTL != 0 {
		t.Fatalf("CacheTTL = %v, want 0", cfg.CacheTTL)
	}
	if cfg.RateLimit != 2.5 {
		t.Fatalf("RateLimit = %v, want 2.5", cfg.RateLimit)
	}
	if cfg.LogFile != filepath.Join(home, "logs/board.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
source = "   "
api_url = ""
refresh_seconds = 0
rate_limit = -1
search_mode = ""
view = " "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `api_url = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"source":         `source = "kafka"`,
		"drift":          `drift = 1.5`,
		"failure_rate":   `failure_rate = -0.1`,
		"search_mode":    `search_mode = "merge"`,
		"view":           `view = "cargo"`,
		"sort":           `sort = "price"`,
		"sort_direction": `sort_direction = "sideways"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := Load(writeConfig(t, body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error for %s", body)
			}
			if !strings.Contains(err.Error(), name) && !strings.Contains(err.Error(), "invalid") {
				t.Fatalf("Load error = %q, want it to name %s", err.Error(), name)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDefaultPath_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := DefaultPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("DefaultPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/flightboard/config.toml")) {
		t.Fatalf("DefaultPath = %q, want it to end with /flightboard/config.toml", got)
	}
}
