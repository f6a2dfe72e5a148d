// Package board implements the flight board pipeline: facet filtering,
// sorting, free-text search and the controller that ties them to a
// flights.Source.
//
// # Pipeline
//
// The displayed list is derived from the raw fetched list on every change:
//
//	override (default): term set   → Search(raw)
//	                    term blank → Sort(Facets(raw))
//	compose:                         Sort(Search(Facets(raw)))
//
// In override mode an active search replaces the faceted, sorted list
// instead of narrowing it. The facet and sort selections are kept and take
// effect again once the term is cleared.
//
// # Controller
//
// Controller moves between three phases:
//
//	loading ──ok──→ ready
//	   │              │
//	   └──fail──→ error
//	ready/error ──tick or view switch──→ loading
//
// Every fetch carries a generation number. A result whose generation is not
// the latest issued is discarded with ErrStale, so switching views while a
// fetch is in flight never shows the old view's records.
//
// A failed fetch clears the raw list and records ErrorMessage. It is not
// retried until the next tick or view switch.
//
// Close cancels the refresh loop, stops the search debouncer and waits for
// in-flight fetches; nothing is published after it returns.
package board
