package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightboard/internal/flights"
)

// detailModal shows the extended information for the selected flight.
type detailModal struct {
	record flights.Record
	view   flights.ViewMode
}

func newDetailModal(r flights.Record, view flights.ViewMode) *detailModal {
	return &detailModal{record: r, view: view}
}

// Update implements Modal. Any close key dismisses the dialog.
func (d *detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	if key.Matches(keyMsg, keys.Escape) || key.Matches(keyMsg, keys.Confirm) || key.Matches(keyMsg, keys.Quit) {
		return d, nil, true
	}
	return d, nil, false
}

// View implements Modal.
func (d *detailModal) View(th Theme, width, height int) string {
	styles := th.Styles()
	info := flights.DetailsFor(d.record, d.view)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(d.record.AirlineCode()))
	b.WriteString(styles.Text.Bold(true).Render(d.record.FlightDigits()))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(d.record.Airline))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(info.From + "  →  " + info.To))
	b.WriteString("\n")
	b.WriteString(styles.StatusStyle(info.StatusClass).Render(d.record.Status))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"Terminal", info.Terminal},
		{"Gate", info.Gate},
		{"Aircraft", info.Aircraft},
		{"Scheduled", info.Scheduled},
	}
	if info.Estimated != "" {
		rows = append(rows, struct{ label, value string }{"Estimated", info.Estimated})
	}
	rows = append(rows, []struct{ label, value string }{
		{"Distance", info.Distance},
		{"Duration", info.Duration},
		{"Baggage", info.Baggage},
		{"Weather", info.Weather},
	}...)

	for _, row := range rows {
		b.WriteString(styles.MutedText.Render(padRight(row.label, 12)))
		if row.label == "Estimated" {
			b.WriteString(styles.WarningText.Render(row.value))
		} else {
			b.WriteString(styles.Text.Render(row.value))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc close"))

	return placeModal(th, b.String(), 48, width, height)
}
