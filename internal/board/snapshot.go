package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/five82/flightboard/internal/flights"
)

// Phase is the controller's fetch state.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// ErrorMessage is shown in place of the board when a fetch fails.
const ErrorMessage = "Unable to load flight information. Please try again later."

// SearchMode controls how a search term combines with facets and sort.
type SearchMode string

const (
	// SearchOverride replaces the faceted, sorted list with a search over
	// the raw list while a term is active.
	SearchOverride SearchMode = "override"
	// SearchCompose narrows the faceted list by the term, then sorts.
	SearchCompose SearchMode = "compose"
)

// ParseSearchMode validates a mode name. Blank means SearchOverride.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SearchOverride:
		return SearchOverride, nil
	case SearchCompose:
		return SearchCompose, nil
	default:
		return "", fmt.Errorf("unknown search mode %q", s)
	}
}

// Snapshot is everything the UI needs to draw the board.
type Snapshot struct {
	View       flights.ViewMode
	Phase      Phase
	Records    []flights.Record // displayed list
	Total      int              // raw record count
	Options    FacetOptions
	Filters    FilterState
	Sort       SortState
	Search     string
	SearchMode SearchMode
	Selected   *flights.Record

	Error               string
	Err                 error
	ConsecutiveFailures int
	LastFetched         time.Time
}

// Loading reports whether a fetch is outstanding.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// IsOffline is true once two fetches in a row have failed.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Searching reports whether a non-blank search term is active.
func (s Snapshot) Searching() bool {
	return strings.TrimSpace(s.Search) != ""
}

// CloneSnapshot deep-copies s.
func CloneSnapshot(s Snapshot) Snapshot {
	s.Records = slices.Clone(s.Records)
	s.Options = s.Options.clone()
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

// Visible derives the displayed list from the raw list.
func Visible(raw []flights.Record, fs FilterState, ss SortState, term string, mode SearchMode, view flights.ViewMode) []flights.Record {
	searching := strings.TrimSpace(term) != ""
	if searching && mode != SearchCompose {
		return ApplySearch(raw, term, view)
	}
	out := ApplyFacets(raw, fs)
	if searching {
		out = ApplySearch(out, term, view)
	}
	return ApplySort(out, ss)
}
