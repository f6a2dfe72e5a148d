package board

import "github.com/five82/flightboard/internal/flights"

func ids(records []flights.Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
