// Package config loads flightboard's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flightboard/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but a field is missing or blank, keep its default
//
// # TOML Format
//
//	source             = "mock"            # "mock" or "http"
//	api_url            = "127.0.0.1:8088"  # board API when source = "http"
//	refresh_seconds    = 60
//	latency_ms         = 800               # mock source delay, 0 disables
//	drift              = 0.2               # mock status change probability
//	failure_rate       = 0.0               # mock fetch failure probability
//	search_debounce_ms = 300
//	search_mode        = "override"        # or "compose"
//	view               = "departures"      # initial view
//	listen             = "127.0.0.1:8088"  # serve mode
//	cache_seconds      = 5                 # serve mode response cache, 0 disables
//	rate_limit         = 10                # serve mode requests/sec per client
//	log_file           = "~/.local/state/flightboard/flightboard.log"
//	log_level          = "info"
//
// Tilde expansion is performed on log_file and on the config path itself.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
//   - Out of range or unknown values (source, drift, failure_rate,
//     search_mode, view)
//
// Configuration errors are fatal at startup. A missing file is not an error.
package config
