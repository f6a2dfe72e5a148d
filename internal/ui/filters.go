package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightboard/internal/board"
)

// setFacetMsg asks the model to apply a facet selection.
type setFacetMsg struct {
	facet board.Facet
	value string
}

// resetFiltersMsg asks the model to reset every facet.
type resetFiltersMsg struct{}

// filterModal edits the three facet filters. It holds a copy of the
// current filters and options, refreshed by the model on every snapshot.
type filterModal struct {
	focus   int
	filters board.FilterState
	options board.FacetOptions
}

func newFilterModal(snap board.Snapshot) *filterModal {
	return &filterModal{filters: snap.Filters, options: snap.Options}
}

func (f *filterModal) sync(snap board.Snapshot) {
	f.filters = snap.Filters
	f.options = snap.Options
}

func (f *filterModal) facet() board.Facet {
	return board.Facets[f.focus]
}

// choices returns All followed by the facet's distinct values.
func (f *filterModal) choices(facet board.Facet) []string {
	return append([]string{board.All}, f.options.Values(facet)...)
}

// cycle returns the value step positions away from the current one.
// A current value missing from the options counts as All.
func (f *filterModal) cycle(step int) string {
	facet := f.facet()
	choices := f.choices(facet)
	idx := max(slices.Index(choices, f.filters.Get(facet)), 0)
	idx = (idx + step + len(choices)) % len(choices)
	return choices[idx]
}

// Update implements Modal.
func (f *filterModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Filters),
		key.Matches(keyMsg, keys.Confirm), key.Matches(keyMsg, keys.Quit):
		return f, nil, true
	case key.Matches(keyMsg, keys.Up):
		f.focus = (f.focus - 1 + len(board.Facets)) % len(board.Facets)
	case key.Matches(keyMsg, keys.Down):
		f.focus = (f.focus + 1) % len(board.Facets)
	case key.Matches(keyMsg, keys.Left):
		return f, f.apply(f.cycle(-1)), false
	case key.Matches(keyMsg, keys.Right):
		return f, f.apply(f.cycle(1)), false
	case key.Matches(keyMsg, keys.ResetFilters):
		f.filters = board.DefaultFilters()
		return f, func() tea.Msg { return resetFiltersMsg{} }, false
	}
	return f, nil, false
}

func (f *filterModal) apply(value string) tea.Cmd {
	facet := f.facet()
	f.filters = f.filters.With(facet, value)
	return func() tea.Msg { return setFacetMsg{facet: facet, value: value} }
}

// View implements Modal.
func (f *filterModal) View(th Theme, width, height int) string {
	styles := th.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Filters"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	for i, facet := range board.Facets {
		label := fmt.Sprintf("%-9s", facet.Label())
		value := f.filters.Get(facet)
		display := ternary(value == board.All, "All", value)
		if i == f.focus {
			b.WriteString(styles.AccentText.Bold(true).Render("› " + label))
			b.WriteString(styles.Text.Bold(true).Render("◀ " + truncate(display, 20) + " ▶"))
		} else {
			b.WriteString(styles.MutedText.Render("  " + label))
			b.WriteString(styles.Text.Render("  " + truncate(display, 20)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("↑/↓ facet  ←/→ value  r reset  esc close"))

	return placeModal(th, b.String(), 46, width, height)
}
