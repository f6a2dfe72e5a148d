package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/five82/flightboard/internal/flights"
)

// SortKey names a sortable record field.
type SortKey string

const (
	KeyTime         SortKey = "time"
	KeyFlightNumber SortKey = "flightNumber"
	KeyAirline      SortKey = "airline"
	KeyDestination  SortKey = "destination"
	KeyOrigin       SortKey = "origin"
	KeyStatus       SortKey = "status"
	KeyTerminal     SortKey = "terminal"
	KeyGate         SortKey = "gate"
)

// SortKeys lists every valid key.
var SortKeys = []SortKey{
	KeyTime, KeyFlightNumber, KeyAirline, KeyDestination,
	KeyOrigin, KeyStatus, KeyTerminal, KeyGate,
}

// ParseSortKey validates a key name. Matching is case-insensitive.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// LocationKey is the key of the location column shown for view.
func LocationKey(view flights.ViewMode) SortKey {
	if view == flights.Arrivals {
		return KeyOrigin
	}
	return KeyDestination
}

func (k SortKey) value(r flights.Record) string {
	switch k {
	case KeyTime:
		return r.Time
	case KeyFlightNumber:
		return r.FlightNumber
	case KeyAirline:
		return r.Airline
	case KeyDestination:
		return r.Destination
	case KeyOrigin:
		return r.Origin
	case KeyStatus:
		return r.Status
	case KeyTerminal:
		return r.Terminal
	case KeyGate:
		return r.Gate
	default:
		return ""
	}
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection validates a direction name. Blank means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Arrow returns the indicator drawn next to the active column header.
func (d Direction) Arrow() string {
	if d == Desc {
		return "↓"
	}
	return "↑"
}

// SortState is the active sort key and direction.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders by time ascending.
func DefaultSort() SortState {
	return SortState{Key: KeyTime, Direction: Asc}
}

// Toggle flips the direction when key is already active and otherwise
// switches to key ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key && s.Direction != Desc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// ApplySort returns a new slice ordered by s. Keys compare as strings, which
// orders "HH:MM" times correctly only because they are fixed width. Desc
// negates each comparison, so equal keys keep their input order in both
// directions.
func ApplySort(records []flights.Record, s SortState) []flights.Record {
	out := slices.Clone(records)
	if out == nil {
		out = []flights.Record{}
	}
	key := s.Key
	if key == "" {
		key = KeyTime
	}
	slices.SortStableFunc(out, func(a, b flights.Record) int {
		c := strings.Compare(key.value(a), key.value(b))
		if s.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}
