package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the airline column
	// is hidden and the command bar is shortened.
	LayoutCompactWidth = 90

	// LayoutWideWidth is the minimum width for the last-updated clock in
	// the header.
	LayoutWideWidth = 110
)

// Fixed rows taken by the header, command bar and search line.
const chromeRows = 3

// Column widths of the board table, in cells. Each fits its title plus
// the sort arrow.
const (
	colTime     = 7
	colFlight   = 8
	colAirline  = 20
	colLocation = 16
	colStatus   = 12
	colTerminal = 10
	colGate     = 6
)

// Timing constants.
const (
	// refreshTimeout bounds a manual refresh started from the keyboard.
	refreshTimeout = 10 * time.Second
)
