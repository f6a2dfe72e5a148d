package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnGap separates board columns and header segments.
const columnGap = 2

// BgStyle renders board text on one background color.
//
// Lipgloss closes every styled segment with a reset, so the gap between two
// segments falls back to the terminal background. On a selected board row
// or the header bar that shows up as holes in the band. BgStyle paints the
// spaces itself. See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string // one pre-rendered space
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with style. Spaces inside text, such as the one in
// "Final Call" or "New York", get the background too.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return wordStyle.Render(text)
	}
	words := strings.Split(text, " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		// Empty words keep runs of spaces (padded cells) intact.
		if w == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wordStyle.Render(w))
	}
	return strings.Join(out, b.space)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Sep returns a styled separator string.
func (b BgStyle) Sep(sep string) string {
	return lipgloss.NewStyle().Background(b.bg).Render(sep)
}

// Columns lays out rendered cells as a board line: one leading space, then
// the cells separated by the column gap.
func (b BgStyle) Columns(cells []string) string {
	return b.space + strings.Join(cells, b.Spaces(columnGap))
}

// KeyHint renders a "key:desc" pair for the command and search bars.
func (b BgStyle) KeyHint(key, desc string, keyStyle, descStyle lipgloss.Style) string {
	return b.Render(key, keyStyle) + b.Sep(":") + b.Render(desc, descStyle)
}

// FillLine pads rendered content to width with the background color, so a
// short row still paints the full band.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}
