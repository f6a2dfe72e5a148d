package flights

// LocalAirport labels the board's own airport in route displays.
const LocalAirport = "Local"

// Details is the extended information shown for a selected flight. The
// board has no real source for these, so most fields are fixed sample
// values; Estimated and Baggage depend on the status.
type Details struct {
	From        string
	To          string
	Aircraft    string
	Scheduled   string
	Estimated   string // empty unless the flight is delayed
	Distance    string
	Duration    string
	Baggage     string
	Weather     string // at the remote airport
	Terminal    string
	Gate        string
	StatusClass string
}

// DetailsFor builds the detail view of r as seen from view.
func DetailsFor(r Record, view ViewMode) Details {
	d := Details{
		Aircraft:    "Boeing 777-300ER",
		Scheduled:   "10:00",
		Distance:    "3,450 miles",
		Duration:    "7h 15m",
		Baggage:     "Loading",
		Weather:     "72°F, Partly Cloudy",
		Terminal:    r.Terminal,
		Gate:        r.Gate,
		StatusClass: StatusClass(r.Status),
	}
	if r.Status == StatusDelayed {
		d.Estimated = "10:45"
	}
	if r.Status == StatusBoarding {
		d.Baggage = "Claim 5"
	}
	if view == Arrivals {
		d.From, d.To = r.Origin, LocalAirport
	} else {
		d.From, d.To = LocalAirport, r.Destination
	}
	return d
}
