// Package state provides the thread-safe snapshot store shared by the board
// controller and the terminal UI.
//
// # Overview
//
// The controller is the only writer. After every change (fetch result, view
// switch, facet, sort, search, selection) it publishes a complete snapshot.
// The UI never calls into the controller to read; it takes copies from the
// store and re-renders when Changed fires.
//
//	Producer (board.Controller):    Consumer (ui.Model):
//	┌──────────────────┐            ┌──────────────────┐
//	│ fetch / mutate   │            │ <-store.Changed()│
//	│      ↓           │            │      ↓           │
//	│ store.Publish()  │───────────→│ store.Snapshot() │
//	└──────────────────┘  (RWMutex) │      ↓           │
//	                                │ render           │
//	                                └──────────────────┘
//
// # Copying
//
// Store is generic over the snapshot type and takes a clone function at
// construction. Publish stores a clone of its argument and Snapshot returns
// a clone of the stored value, so neither side can observe the other's
// mutations of slices or pointers.
//
// # Notifications
//
// Changed returns a channel with a buffer of one. Publish performs a
// non-blocking send, so a slow reader sees one wakeup for any number of
// publishes and always reads the latest value afterwards.
package state
