package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/flights"
)

// column is one table column.
type column struct {
	title string
	key   board.SortKey
	width int
}

// columns returns the table layout for the view and terminal width.
func (m Model) columns() []column {
	view := m.snapshot.View
	cols := []column{
		{"Time", board.KeyTime, colTime},
		{"Flight", board.KeyFlightNumber, colFlight},
		{"Airline", board.KeyAirline, colAirline},
		{view.LocationLabel(), board.LocationKey(view), colLocation},
		{"Status", board.KeyStatus, colStatus},
		{"Terminal", board.KeyTerminal, colTerminal},
		{"Gate", board.KeyGate, colGate},
	}
	if m.width > 0 && m.width < LayoutCompactWidth {
		cols = slices.Delete(cols, 2, 3)
	}
	return cols
}

// syncCursor keeps the cursor on the same flight across snapshots and
// clamps it to the list.
func (m *Model) syncCursor() {
	records := m.snapshot.Records
	if len(records) == 0 {
		m.selectedRow = 0
		return
	}
	if m.cursorID != 0 {
		if idx := slices.IndexFunc(records, func(r flights.Record) bool { return r.ID == m.cursorID }); idx >= 0 {
			m.selectedRow = idx
			return
		}
	}
	m.selectedRow = min(max(m.selectedRow, 0), len(records)-1)
	m.cursorID = records[m.selectedRow].ID
}

// moveCursor moves the cursor by delta rows, clamped.
func (m *Model) moveCursor(delta int) {
	records := m.snapshot.Records
	if len(records) == 0 {
		return
	}
	m.selectedRow = min(max(m.selectedRow+delta, 0), len(records)-1)
	m.cursorID = records[m.selectedRow].ID
}

// cursorRecord returns the flight under the cursor.
func (m Model) cursorRecord() (flights.Record, bool) {
	records := m.snapshot.Records
	if m.selectedRow < 0 || m.selectedRow >= len(records) {
		return flights.Record{}, false
	}
	return records[m.selectedRow], true
}

// bodyHeight is the number of table rows that fit on screen.
func (m Model) bodyHeight() int {
	// box borders and the column header row
	return max(m.height-chromeRows-3, 1)
}

// renderBoard renders the flight table in a titled box.
func (m Model) renderBoard() string {
	height := max(m.height-chromeRows, 5)
	return m.renderTitledBox(m.boardTitle(), m.boardContent(), m.width, height, m.modal == nil)
}

// boardTitle returns the box title with counts and the filter indicator.
func (m Model) boardTitle() string {
	snap := m.snapshot
	title := snap.View.Label()
	switch {
	case snap.Phase == board.PhaseError:
		return title
	case len(snap.Records) == snap.Total:
		title = fmt.Sprintf("%s (%d)", title, snap.Total)
	default:
		title = fmt.Sprintf("%s (%d/%d)", title, len(snap.Records), snap.Total)
	}
	if snap.Filters.Active() && !(snap.Searching() && snap.SearchMode == board.SearchOverride) {
		title += " · filtered"
	}
	return title
}

func (m Model) boardContent() string {
	snap := m.snapshot
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	switch {
	case snap.Phase == board.PhaseError:
		return m.centeredMessage(bg.Render(snap.Error, styles.DangerText), bg.Render("Press R to retry", styles.MutedText))
	case snap.Loading() && len(snap.Records) == 0:
		return m.centeredMessage(bg.Render(m.spinner.View()+" Loading flights...", styles.MutedText))
	case len(snap.Records) == 0:
		return m.centeredMessage(bg.Render("No flights found", styles.MutedText))
	}

	cols := m.columns()
	lines := []string{m.renderColumnHeader(cols, styles, bg)}

	visible := m.bodyHeight()
	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := min(start+visible, len(snap.Records))
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(snap.Records[i], cols, i == m.selectedRow))
	}
	return strings.Join(lines, "\n")
}

// centeredMessage places lines in the middle of the board area.
func (m Model) centeredMessage(lines ...string) string {
	pad := max(m.bodyHeight()/2-len(lines)/2, 0)
	inner := max(m.width-2, 0)
	out := make([]string, 0, pad+len(lines))
	for range pad {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, lipgloss.PlaceHorizontal(inner, lipgloss.Center, line,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt))))
	}
	return strings.Join(out, "\n")
}

// renderColumnHeader draws the column titles with the sort arrow on the
// active column.
func (m Model) renderColumnHeader(cols []column, styles Styles, bg BgStyle) string {
	sort := m.snapshot.Sort
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		title := c.title
		style := styles.MutedText.Bold(true)
		if c.key == sort.Key {
			title += " " + sort.Direction.Arrow()
			style = styles.AccentText.Bold(true)
		}
		parts = append(parts, bg.Render(fit(title, c.width), style))
	}
	return bg.Columns(parts)
}

// renderRow renders one flight. The cursor row uses the selection colors
// for every cell.
func (m Model) renderRow(r flights.Record, cols []column, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	text, muted, accent := styles.Text, styles.MutedText, styles.AccentText.Bold(true)
	status := styles.StatusStyle(flights.StatusClass(r.Status))
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		text, muted, accent, status = sel, sel, sel.Bold(true), sel.Bold(true)
	}

	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		var cell string
		switch c.key {
		case board.KeyTime:
			cell = bg.Render(fit(r.Time, c.width), text)
		case board.KeyFlightNumber:
			code := r.AirlineCode()
			cell = bg.Render(code, accent) + bg.Render(fit(r.FlightDigits(), c.width-len([]rune(code))), text)
		case board.KeyAirline:
			cell = bg.Render(fit(r.Airline, c.width), muted)
		case board.KeyStatus:
			cell = bg.Render(fit(r.Status, c.width), status)
		case board.KeyTerminal:
			cell = bg.Render(fit(r.Terminal, c.width), text)
		case board.KeyGate:
			cell = bg.Render(fit(r.Gate, c.width), text)
		default:
			cell = bg.Render(fit(r.Location(m.snapshot.View), c.width), text)
		}
		parts = append(parts, cell)
	}
	return bg.FillLine(bg.Columns(parts), max(m.width-2, 0))
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(m.theme.SurfaceAlt))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
