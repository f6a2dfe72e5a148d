// Package app is the composition root for flightboard.
//
// Run loads the configuration, builds the logger, the flight source and the
// board controller, starts the refresh loop and hands control to the TUI.
// Serve builds the same simulated source and exposes it over HTTP instead.
//
// # Error Handling
//
// Fatal errors (returned from Run and Serve):
//   - Configuration file invalid or unreadable
//   - Log file cannot be created
//   - Invalid API URL for the http source
//
// Recoverable errors (logged, the board keeps refreshing):
//   - Fetch failures, shown on the board as an error state
//   - Theme preference save failures
package app
