package flights

import (
	"fmt"
	"strings"
)

// ViewMode selects which board is displayed.
type ViewMode string

const (
	Departures ViewMode = "departures"
	Arrivals   ViewMode = "arrivals"
)

// ParseViewMode validates a view mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case Departures:
		return Departures, nil
	case Arrivals:
		return Arrivals, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Other returns the opposite view mode.
func (v ViewMode) Other() ViewMode {
	if v == Arrivals {
		return Departures
	}
	return Arrivals
}

// Label returns the display name of the view.
func (v ViewMode) Label() string {
	if v == Arrivals {
		return "Arrivals"
	}
	return "Departures"
}

// LocationLabel names the location column for the view.
func (v ViewMode) LocationLabel() string {
	if v == Arrivals {
		return "Origin"
	}
	return "Destination"
}

// Known flight statuses. The set is open-ended; sources may send others.
const (
	StatusOnTime     = "On Time"
	StatusDelayed    = "Delayed"
	StatusBoarding   = "Boarding"
	StatusFinalCall  = "Final Call"
	StatusGateClosed = "Gate Closed"
	StatusLanded     = "Landed"
	StatusArrived    = "Arrived"
)

// Record mirrors one row of the flight board. Departures carry Destination,
// arrivals carry Origin; the active field is chosen by the view mode.
type Record struct {
	ID           int    `json:"id"`
	Time         string `json:"time"`
	FlightNumber string `json:"flightNumber"`
	Airline      string `json:"airline"`
	Status       string `json:"status"`
	Terminal     string `json:"terminal"`
	Gate         string `json:"gate"`
	Destination  string `json:"destination,omitempty"`
	Origin       string `json:"origin,omitempty"`
}

// Location returns the view-appropriate location field.
func (r Record) Location(view ViewMode) string {
	if view == Arrivals {
		return r.Origin
	}
	return r.Destination
}

// AirlineCode returns the carrier prefix of the flight number.
func (r Record) AirlineCode() string {
	if len(r.FlightNumber) <= 2 {
		return r.FlightNumber
	}
	return r.FlightNumber[:2]
}

// FlightDigits returns the flight number without the carrier prefix.
func (r Record) FlightDigits() string {
	if len(r.FlightNumber) <= 2 {
		return ""
	}
	return r.FlightNumber[2:]
}

// StatusClass buckets a status for coloring. Unknown statuses return "".
func StatusClass(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "on time"):
		return "on-time"
	case strings.Contains(s, "delayed"):
		return "delayed"
	case strings.Contains(s, "boarding"):
		return "boarding"
	case strings.Contains(s, "final call"), strings.Contains(s, "gate closed"):
		return "final-call"
	case strings.Contains(s, "landed"), strings.Contains(s, "arrived"):
		return "landed"
	default:
		return ""
	}
}

// Clone returns an independent copy of records.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
