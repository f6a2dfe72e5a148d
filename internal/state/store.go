package state

import "sync"

// Store coordinates concurrent updates to a published snapshot. Writers call
// Publish; readers call Snapshot and receive an independent copy.
type Store[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	clone   func(T) T
	changed chan struct{}
}

// New returns an empty store. clone produces a deep copy of a snapshot; nil
// means values are copied by assignment only.
func New[T any](clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{
		clone:   clone,
		changed: make(chan struct{}, 1),
	}
}

// Publish replaces the stored snapshot and wakes one pending listener.
func (s *Store[T]) Publish(v T) {
	s.mu.Lock()
	s.value = s.clone(v)
	s.version++
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

// Version counts publishes. Zero means nothing was published yet.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Changed fires after Publish. Notifications coalesce: several publishes
// between two receives produce a single wakeup.
func (s *Store[T]) Changed() <-chan struct{} {
	return s.changed
}
