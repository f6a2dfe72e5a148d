// Package flights defines flight board records and the sources that supply
// them.
//
// # Sources
//
// A Source returns the ordered list of records for a view mode:
//
//   - MockSource serves a built-in fixture table after a simulated delay and
//     randomly reassigns some statuses on every call to mimic live updates.
//   - HTTPSource calls GET /api/flights/{view} on a board API and decodes a JSON
//     array of records.
//
// Both return a fresh slice on every call, so callers may keep earlier
// snapshots without copying.
//
// # Errors
//
// Every failure crossing the source boundary is a *FetchError: transport
// errors, non-2xx responses, malformed payloads, timeouts and simulated
// outages. Callers handle a single error kind:
//
//	records, err := src.Fetch(ctx, flights.Departures)
//	var fe *flights.FetchError
//	if errors.As(err, &fe) {
//		// show the board-wide error message
//	}
//
// # Records
//
// Departures carry Destination and arrivals carry Origin. Records do not tag
// their own variant; the caller knows which view it asked for and uses
// Record.Location(view) to read the active field.
package flights
