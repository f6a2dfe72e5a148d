package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Escape      key.Binding

	// Board
	ToggleView   key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	Filters      key.Binding
	ResetFilters key.Binding
	Refresh      key.Binding
	Details      key.Binding
	Logs         key.Binding

	// Sort columns, in display order
	SortTime     key.Binding
	SortFlight   key.Binding
	SortLocation key.Binding
	SortStatus   key.Binding
	SortTerminal key.Binding
	SortGate     key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle light/dark"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		ToggleView: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "Departures/Arrivals"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear search"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Filters"),
		),
		ResetFilters: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Refresh now"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Flight details"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent activity"),
		),

		SortTime: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by time"),
		),
		SortFlight: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by flight"),
		),
		SortLocation: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by destination/origin"),
		),
		SortStatus: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Sort by status"),
		),
		SortTerminal: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Sort by terminal"),
		),
		SortGate: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "Sort by gate"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("right", "Next value"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped as the help overlay shows them.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageDown, k.PageUp},
		{k.ToggleView, k.Search, k.ClearSearch, k.Filters, k.ResetFilters, k.Details, k.Refresh},
		{k.SortTime, k.SortFlight, k.SortLocation, k.SortStatus, k.SortTerminal, k.SortGate},
		{k.Logs, k.ToggleTheme, k.Help, k.Quit},
	}
}
