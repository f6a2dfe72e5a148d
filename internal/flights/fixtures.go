package flights

var departureFixture = []Record{
	{ID: 1, Time: "08:15", FlightNumber: "BA2490", Destination: "New York", Status: StatusOnTime, Terminal: "5", Gate: "A22", Airline: "British Airways"},
	{ID: 2, Time: "09:30", FlightNumber: "LH1010", Destination: "Berlin", Status: StatusBoarding, Terminal: "2", Gate: "B15", Airline: "Lufthansa"},
	{ID: 3, Time: "10:45", FlightNumber: "AF1680", Destination: "Paris", Status: StatusDelayed, Terminal: "4", Gate: "C10", Airline: "Air France"},
	{ID: 4, Time: "11:20", FlightNumber: "EK031", Destination: "Dubai", Status: StatusOnTime, Terminal: "3", Gate: "D25", Airline: "Emirates"},
	{ID: 5, Time: "12:00", FlightNumber: "QR183", Destination: "Doha", Status: StatusGateClosed, Terminal: "1", Gate: "E12", Airline: "Qatar Airways"},
	{ID: 6, Time: "13:15", FlightNumber: "SQ321", Destination: "Singapore", Status: StatusOnTime, Terminal: "2", Gate: "F08", Airline: "Singapore Airlines"},
	{ID: 7, Time: "14:30", FlightNumber: "UA988", Destination: "Chicago", Status: StatusDelayed, Terminal: "3", Gate: "G17", Airline: "United Airlines"},
	{ID: 8, Time: "15:45", FlightNumber: "DL216", Destination: "Atlanta", Status: StatusOnTime, Terminal: "4", Gate: "H22", Airline: "Delta Air Lines"},
}

var arrivalFixture = []Record{
	{ID: 101, Time: "08:00", FlightNumber: "LX318", Origin: "Zurich", Status: StatusLanded, Terminal: "2", Gate: "B10", Airline: "Swiss"},
	{ID: 102, Time: "09:15", FlightNumber: "IB3166", Origin: "Madrid", Status: StatusOnTime, Terminal: "5", Gate: "A15", Airline: "Iberia"},
	{ID: 103, Time: "10:30", FlightNumber: "TK1980", Origin: "Istanbul", Status: StatusDelayed, Terminal: "2", Gate: "C22", Airline: "Turkish Airlines"},
	{ID: 104, Time: "11:45", FlightNumber: "CX250", Origin: "Hong Kong", Status: StatusOnTime, Terminal: "3", Gate: "D08", Airline: "Cathay Pacific"},
	{ID: 105, Time: "12:30", FlightNumber: "JL043", Origin: "Tokyo", Status: StatusArrived, Terminal: "4", Gate: "E17", Airline: "Japan Airlines"},
	{ID: 106, Time: "13:40", FlightNumber: "EY019", Origin: "Abu Dhabi", Status: StatusOnTime, Terminal: "1", Gate: "F12", Airline: "Etihad Airways"},
	{ID: 107, Time: "14:15", FlightNumber: "AY1332", Origin: "Helsinki", Status: StatusDelayed, Terminal: "5", Gate: "G09", Airline: "Finnair"},
	{ID: 108, Time: "15:20", FlightNumber: "AC860", Origin: "Toronto", Status: StatusOnTime, Terminal: "2", Gate: "H14", Airline: "Air Canada"},
}

// Fixture returns a fresh copy of the seed table for the view.
func Fixture(view ViewMode) []Record {
	if view == Arrivals {
		return Clone(arrivalFixture)
	}
	return Clone(departureFixture)
}
