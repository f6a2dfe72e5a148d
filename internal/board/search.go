package board

import (
	"strings"

	"github.com/five82/flightboard/internal/flights"
)

// ApplySearch keeps records whose flight number, airline or view location
// contains term, ignoring case. A blank term returns records unchanged.
func ApplySearch(records []flights.Record, term string, view flights.ViewMode) []flights.Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}
	out := make([]flights.Record, 0, len(records))
	for _, r := range records {
		if matchesSearch(r, needle, view) {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(r flights.Record, needle string, view flights.ViewMode) bool {
	return strings.Contains(strings.ToLower(r.Location(view)), needle) ||
		strings.Contains(strings.ToLower(r.FlightNumber), needle) ||
		strings.Contains(strings.ToLower(r.Airline), needle)
}
