package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/flightboard/internal/flights"
)

func TestApplySearch(t *testing.T) {
	departures := flights.Fixture(flights.Departures)
	arrivals := flights.Fixture(flights.Arrivals)

	tests := []struct {
		name    string
		records []flights.Record
		view    flights.ViewMode
		term    string
		want    []int
	}{
		{"airline substring", departures, flights.Departures, "air", []int{1, 3, 5, 6, 7, 8}},
		{"case insensitive", departures, flights.Departures, "AIR", []int{1, 3, 5, 6, 7, 8}},
		{"flight number", departures, flights.Departures, "lh10", []int{2}},
		{"destination", departures, flights.Departures, "york", []int{1}},
		{"surrounding whitespace", departures, flights.Departures, "  doha ", []int{5}},
		{"origin on arrivals", arrivals, flights.Arrivals, "tokyo", []int{105}},
		{"destination ignored on arrivals", arrivals, flights.Arrivals, "berlin", []int{}},
		{"no match", departures, flights.Departures, "zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySearch(tt.records, tt.term, tt.view)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplySearch_BlankTermIsNoOp(t *testing.T) {
	records := flights.Fixture(flights.Departures)
	for _, term := range []string{"", "   ", "\t"} {
		got := ApplySearch(records, term, flights.Departures)
		assert.Equal(t, records, got)
	}
}

func TestApplySearch_OnlyDropsRecords(t *testing.T) {
	records := flights.Fixture(flights.Departures)
	got := ApplySearch(records, "a", flights.Departures)
	assert.LessOrEqual(t, len(got), len(records))
	for _, r := range got {
		assert.Contains(t, records, r)
	}
}
