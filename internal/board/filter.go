package board

import "github.com/five82/flightboard/internal/flights"

// All is the facet value that disables a facet.
const All = "all"

// Facet names one of the exact-match filters.
type Facet int

const (
	FacetAirline Facet = iota
	FacetStatus
	FacetTerminal
)

// Facets lists the facets in display order.
var Facets = []Facet{FacetAirline, FacetStatus, FacetTerminal}

func (f Facet) String() string {
	switch f {
	case FacetAirline:
		return "airline"
	case FacetStatus:
		return "status"
	case FacetTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Label is the human name used by the filter panel.
func (f Facet) Label() string {
	switch f {
	case FacetAirline:
		return "Airline"
	case FacetStatus:
		return "Status"
	case FacetTerminal:
		return "Terminal"
	default:
		return "?"
	}
}

func (f Facet) value(r flights.Record) string {
	switch f {
	case FacetAirline:
		return r.Airline
	case FacetStatus:
		return r.Status
	case FacetTerminal:
		return r.Terminal
	default:
		return ""
	}
}

// FilterState holds the three facet selections. Each is All or an exact
// value.
type FilterState struct {
	Airline  string
	Status   string
	Terminal string
}

// DefaultFilters returns a FilterState with every facet set to All.
func DefaultFilters() FilterState {
	return FilterState{Airline: All, Status: All, Terminal: All}
}

// Get returns the selection for facet. Blank reads as All.
func (fs FilterState) Get(f Facet) string {
	var v string
	switch f {
	case FacetAirline:
		v = fs.Airline
	case FacetStatus:
		v = fs.Status
	case FacetTerminal:
		v = fs.Terminal
	}
	if v == "" {
		return All
	}
	return v
}

// With returns a copy with facet set to value.
func (fs FilterState) With(f Facet, value string) FilterState {
	if value == "" {
		value = All
	}
	switch f {
	case FacetAirline:
		fs.Airline = value
	case FacetStatus:
		fs.Status = value
	case FacetTerminal:
		fs.Terminal = value
	}
	return fs
}

// Active reports whether any facet narrows the list.
func (fs FilterState) Active() bool {
	for _, f := range Facets {
		if fs.Get(f) != All {
			return true
		}
	}
	return false
}

// ApplyFacets keeps the records matching every non-All facet exactly.
// Input order is preserved and the input slice is never modified.
func ApplyFacets(records []flights.Record, fs FilterState) []flights.Record {
	out := make([]flights.Record, 0, len(records))
	for _, r := range records {
		if matchesFacets(r, fs) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFacets(r flights.Record, fs FilterState) bool {
	for _, f := range Facets {
		want := fs.Get(f)
		if want != All && f.value(r) != want {
			return false
		}
	}
	return true
}

// FacetOptions are the distinct values available for each facet, in the
// order they first appear in the raw list.
type FacetOptions struct {
	Airlines  []string
	Statuses  []string
	Terminals []string
}

// Values returns the options for facet.
func (o FacetOptions) Values(f Facet) []string {
	switch f {
	case FacetAirline:
		return o.Airlines
	case FacetStatus:
		return o.Statuses
	case FacetTerminal:
		return o.Terminals
	default:
		return nil
	}
}

// CollectFacetOptions projects the distinct facet values out of records.
func CollectFacetOptions(records []flights.Record) FacetOptions {
	return FacetOptions{
		Airlines:  distinct(records, FacetAirline),
		Statuses:  distinct(records, FacetStatus),
		Terminals: distinct(records, FacetTerminal),
	}
}

func distinct(records []flights.Record, f Facet) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		v := f.value(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (o FacetOptions) clone() FacetOptions {
	return FacetOptions{
		Airlines:  append([]string(nil), o.Airlines...),
		Statuses:  append([]string(nil), o.Statuses...),
		Terminals: append([]string(nil), o.Terminals...),
	}
}
