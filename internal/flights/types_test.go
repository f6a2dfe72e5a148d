package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewMode(t *testing.T) {
	v, err := ParseViewMode(" Arrivals ")
	require.NoError(t, err)
	assert.Equal(t, Arrivals, v)

	v, err = ParseViewMode("departures")
	require.NoError(t, err)
	assert.Equal(t, Departures, v)

	_, err = ParseViewMode("cargo")
	assert.Error(t, err)
}

func TestViewMode_Labels(t *testing.T) {
	assert.Equal(t, Arrivals, Departures.Other())
	assert.Equal(t, Departures, Arrivals.Other())
	assert.Equal(t, "Destination", Departures.LocationLabel())
	assert.Equal(t, "Origin", Arrivals.LocationLabel())
	assert.Equal(t, "Arrivals", Arrivals.Label())
}

func TestRecord_Location(t *testing.T) {
	dep := Fixture(Departures)[0]
	arr := Fixture(Arrivals)[0]
	assert.Equal(t, "New York", dep.Location(Departures))
	assert.Empty(t, dep.Location(Arrivals))
	assert.Equal(t, "Zurich", arr.Location(Arrivals))
}

func TestRecord_FlightNumberParts(t *testing.T) {
	r := Record{FlightNumber: "BA2490"}
	assert.Equal(t, "BA", r.AirlineCode())
	assert.Equal(t, "2490", r.FlightDigits())

	short := Record{FlightNumber: "X"}
	assert.Equal(t, "X", short.AirlineCode())
	assert.Empty(t, short.FlightDigits())
}

func TestStatusClass(t *testing.T) {
	tests := map[string]string{
		StatusOnTime:     "on-time",
		StatusDelayed:    "delayed",
		StatusBoarding:   "boarding",
		StatusFinalCall:  "final-call",
		StatusGateClosed: "final-call",
		StatusLanded:     "landed",
		StatusArrived:    "landed",
		"DELAYED 20 MIN": "delayed",
		"Diverted":       "",
	}
	for status, want := range tests {
		assert.Equal(t, want, StatusClass(status), status)
	}
}

func TestFixture_ReturnsFreshCopies(t *testing.T) {
	a := Fixture(Departures)
	require.Len(t, a, 8)
	a[0].Status = "Cancelled"

	b := Fixture(Departures)
	assert.Equal(t, StatusOnTime, b[0].Status)
	assert.Len(t, Fixture(Arrivals), 8)
}
