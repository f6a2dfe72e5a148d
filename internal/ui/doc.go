// Package ui is the terminal flight board, built on Bubble Tea.
//
// The Model renders the snapshots published by a board.Controller and
// translates key presses into controller calls. It never filters or sorts
// records itself; the controller's snapshot is the displayed list.
//
// # Layout
//
//   - Header: view tabs, fetch state, last update time
//   - Command bar: the most used keys and the active palette
//   - Search line: the search box while editing, the active term otherwise
//   - Board: the flight table, or a loading, empty or error message
//
// Help, filter, flight detail and activity dialogs replace the board while
// open.
//
// # Key Bindings
//
//   - v/tab: Switch departures and arrivals
//   - /: Search (enter or esc leaves the box), x: clear search
//   - f: Filters dialog, r: reset filters
//   - 1-6: Sort by time, flight, destination/origin, status, terminal, gate
//   - j/k, g/G: Move the cursor
//   - enter: Flight details
//   - R: Refresh now
//   - L: Recent activity from the log file
//   - T: Toggle light/dark
//   - h/?: Help
//   - q or Ctrl+C: Exit
package ui
