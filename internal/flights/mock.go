package flights

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	defaultLatency = 800 * time.Millisecond
	defaultDrift   = 0.2
)

// driftStatuses are the statuses the simulator assigns on drift. Landed and
// Arrived are never produced, regardless of view.
var driftStatuses = []string{
	StatusOnTime,
	StatusDelayed,
	StatusBoarding,
	StatusFinalCall,
	StatusGateClosed,
}

// ErrSimulatedOutage is returned (wrapped in FetchError) when the mock source
// rolls a failure.
var ErrSimulatedOutage = errors.New("network error")

// MockOptions tune the simulated source.
type MockOptions struct {
	Latency     time.Duration // zero uses 800ms; negative disables
	Drift       float64       // per-record status change probability; zero uses 0.2, negative disables
	FailureRate float64       // probability a fetch fails
	Seed        uint64        // zero seeds from the clock
}

// MockSource serves the built-in fixture table with randomized status drift.
type MockSource struct {
	latency     time.Duration
	drift       float64
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Source = (*MockSource)(nil)

// NewMockSource builds a simulated source.
func NewMockSource(opts MockOptions) *MockSource {
	latency := opts.Latency
	if latency == 0 {
		latency = defaultLatency
	}
	if latency < 0 {
		latency = 0
	}
	drift := opts.Drift
	if drift == 0 {
		drift = defaultDrift
	}
	if drift < 0 {
		drift = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &MockSource{
		latency:     latency,
		drift:       drift,
		failureRate: opts.FailureRate,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Fetch waits for the simulated latency, then returns a fresh copy of the
// fixture for view with some statuses reassigned.
func (s *MockSource) Fetch(ctx context.Context, view ViewMode) ([]Record, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fetchError(view, ctx.Err())
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failureRate > 0 && s.rng.Float64() < s.failureRate {
		return nil, fetchError(view, ErrSimulatedOutage)
	}

	records := Fixture(view)
	for i := range records {
		if s.rng.Float64() < s.drift {
			records[i].Status = driftStatuses[s.rng.IntN(len(driftStatuses))]
		}
	}
	return records, nil
}
