package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightboard/internal/logging"
)

// logTailLimit is how many log entries the activity dialog reads.
const logTailLimit = 200

// logModal shows the most recent entries of the board's log file.
type logModal struct {
	path    string
	entries []logging.Entry
	err     error
}

func newLogModal(path string) *logModal {
	entries, err := logging.Tail(path, logTailLimit)
	return &logModal{path: path, entries: entries, err: err}
}

// Update implements Modal.
func (l *logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Logs),
		key.Matches(keyMsg, keys.Confirm), key.Matches(keyMsg, keys.Quit):
		return l, nil, true
	case key.Matches(keyMsg, keys.Refresh):
		return newLogModal(l.path), nil, false
	}
	return l, nil, false
}

// View implements Modal.
func (l *logModal) View(th Theme, width, height int) string {
	styles := th.Styles()
	modalWidth := max(min(width-6, 110), 20)
	lineWidth := modalWidth - 4

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent Activity"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(truncate(l.path, lineWidth-18)))
	b.WriteString("\n\n")

	// Leave room for the border, padding, title and footer.
	rows := max(height-10, 1)
	switch {
	case l.err != nil:
		b.WriteString(styles.DangerText.Render(truncate(l.err.Error(), lineWidth)))
		b.WriteString("\n")
	case len(l.entries) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet"))
		b.WriteString("\n")
	default:
		start := max(len(l.entries)-rows, 0)
		for _, e := range l.entries[start:] {
			b.WriteString(l.renderEntry(e, styles, th, lineWidth))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("R reload  esc close"))

	return placeModal(th, b.String(), modalWidth, width, height)
}

func (l *logModal) renderEntry(e logging.Entry, styles Styles, th Theme, width int) string {
	clock := e.Time
	if i := strings.IndexByte(clock, 'T'); i >= 0 && len(clock) >= i+9 {
		clock = clock[i+1 : i+9]
	}
	level := strings.ToUpper(e.Level)
	levelStyle := styles.MutedText
	switch e.Level {
	case "warn":
		levelStyle = styles.WarningText
	case "error", "dpanic", "panic", "fatal":
		levelStyle = styles.DangerText
	case "info":
		levelStyle = styles.InfoText
	}

	text := e.Message
	if e.Logger != "" {
		text = e.Logger + ": " + text
	}
	if len(e.Fields) > 0 {
		text += " " + strings.Join(e.Fields, " ")
	}

	prefix := styles.FaintText.Render(padRight(clock, 9)) +
		levelStyle.Render(padRight(level, 6))
	rest := max(width-lipgloss.Width(prefix), 10)
	return prefix + lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text)).Render(truncate(text, rest))
}
