package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/flights"
)

// renderHeader renders the status bar: logo, view tabs, fetch state and
// last update time.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot
	sep := bg.Spaces(columnGap)

	parts := []string{bg.Render("✈ flightboard", styles.Logo)}

	for _, view := range []flights.ViewMode{flights.Departures, flights.Arrivals} {
		if view == snap.View {
			parts = append(parts, bg.Render("["+view.Label()+"]", styles.AccentText.Bold(true)))
		} else {
			parts = append(parts, bg.Render(view.Label(), styles.FaintText))
		}
	}

	switch {
	case snap.Loading():
		parts = append(parts, bg.Render(m.spinner.View()+" Updating", styles.InfoText))
	case snap.IsOffline():
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	case snap.Phase == board.PhaseError:
		parts = append(parts, bg.Render("Fetch failed", styles.DangerText))
	}

	if m.width == 0 || m.width >= LayoutWideWidth {
		if !snap.LastFetched.IsZero() {
			parts = append(parts,
				bg.Render("Updated", styles.MutedText)+bg.Space()+
					bg.Render(snap.LastFetched.Format("15:04:05"), styles.Text))
		}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"v", m.snapshot.View.Other().Label()},
		{"/", "Search"},
		{"f", ternary(m.snapshot.Filters.Active(), "Filters*", "Filters")},
		{"1-6", "Sort"},
		{"enter", "Details"},
	}
	if m.width == 0 || m.width >= LayoutCompactWidth {
		commands = append(commands, cmd{"R", "Refresh"}, cmd{"?", "More"})
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, bg.KeyHint(c.key, c.desc, styles.AccentText, styles.MutedText))
	}
	segments = append(segments, bg.KeyHint("T", m.theme.Name, styles.AccentText, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(columnGap)))
}

// renderSearchBar renders the search line: the input while editing, the
// active term hint otherwise.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	var content string
	switch {
	case m.searching:
		content = bg.Render("Search:", styles.AccentText) + bg.Space() + m.search.View()
	case m.snapshot.Searching():
		hint := "Searching for: " + truncate(m.snapshot.Search, 40)
		content = bg.Render(hint, styles.InfoText) + bg.Spaces(columnGap) +
			bg.KeyHint("x", "Clear", styles.AccentText, styles.MutedText)
		if m.snapshot.Filters.Active() && m.snapshot.SearchMode == board.SearchOverride {
			content += bg.Spaces(columnGap) + bg.Render("(filters ignored while searching)", styles.FaintText)
		}
	}
	return bg.FillLine(bg.Space()+content, m.width)
}
