package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flightboard/internal/flights"
)

type countingSource struct {
	calls atomic.Int32
	err   error
}

func (s *countingSource) Fetch(_ context.Context, view flights.ViewMode) ([]flights.Record, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, &flights.FetchError{View: view, Err: s.err}
	}
	return flights.Fixture(view), nil
}

// counterValue sums the samples of a counter family matching labels.
func counterValue(t *testing.T, s *Server, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := s.registry.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			have := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				have[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if have[k] != v {
					continue metrics
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func newTestServer(t *testing.T, opts Options) (*Server, *httptest.Server) {
	t.Helper()
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	s, err := New(opts)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestHandleFlights(t *testing.T) {
	_, ts := newTestServer(t, Options{Source: &countingSource{}})

	resp := get(t, ts.URL+"/api/flights/arrivals")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	var got []flights.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, flights.Fixture(flights.Arrivals), got)
}

func TestHandleFlights_UnknownView(t *testing.T) {
	_, ts := newTestServer(t, Options{Source: &countingSource{}})
	resp := get(t, ts.URL+"/api/flights/cargo")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleFlights_FetchErrorIs503(t *testing.T) {
	s, ts := newTestServer(t, Options{Source: &countingSource{err: errors.New("down")}})

	resp := get(t, ts.URL+"/api/flights/departures")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "Unable to load flight information")
	assert.Equal(t, 1.0, counterValue(t, s, "flightboard_fetch_errors_total", map[string]string{"view": "departures"}))
}

func TestHandleFlights_CachesPerView(t *testing.T) {
	src := &countingSource{}
	s, ts := newTestServer(t, Options{Source: src, CacheTTL: time.Minute})

	get(t, ts.URL+"/api/flights/departures")
	get(t, ts.URL+"/api/flights/departures")
	get(t, ts.URL+"/api/flights/arrivals")

	assert.Equal(t, int32(2), src.calls.Load())
	assert.Equal(t, 1.0, counterValue(t, s, "flightboard_cache_hits_total", map[string]string{"view": "departures"}))
	assert.Equal(t, 1.0, counterValue(t, s, "flightboard_cache_misses_total", map[string]string{"view": "arrivals"}))
}

func TestHandleFlights_NoCacheWhenDisabled(t *testing.T) {
	src := &countingSource{}
	_, ts := newTestServer(t, Options{Source: src})

	get(t, ts.URL+"/api/flights/departures")
	get(t, ts.URL+"/api/flights/departures")
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRateLimit(t *testing.T) {
	s, ts := newTestServer(t, Options{Source: &countingSource{}, RateLimit: 0.001, Burst: 2})

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, get(t, ts.URL+"/api/flights/departures").StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1.0, counterValue(t, s, "flightboard_rate_limited_total", nil))

	// Health checks are not limited.
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/healthz").StatusCode)
}

func TestClientLimiter_SweepsIdleClients(t *testing.T) {
	l := newClientLimiter(1, 1)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	first := l.get("10.0.0.1")
	l.get("10.0.0.2")
	require.Len(t, l.clients, 2)

	now = now.Add(limiterIdle / 2)
	assert.Same(t, first, l.get("10.0.0.1"), "bucket is reused while active")

	// 10.0.0.2 has been idle for a full period; 10.0.0.1 only for half.
	now = now.Add(limiterIdle / 2)
	l.get("10.0.0.3")
	assert.Len(t, l.clients, 2)
	assert.Contains(t, l.clients, "10.0.0.1")
	assert.Contains(t, l.clients, "10.0.0.3")
	assert.NotContains(t, l.clients, "10.0.0.2")
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	_, ts := newTestServer(t, Options{Source: &countingSource{}})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Options{Source: &countingSource{}})
	get(t, ts.URL+"/api/flights/departures")

	want := `flightboard_http_requests_total{endpoint="/api/flights/{viewMode}",method="GET",status_code="200"} 1`
	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK && strings.Contains(string(body), want)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHTTPSourceAgainstServer(t *testing.T) {
	_, ts := newTestServer(t, Options{Source: &countingSource{}})

	src, err := flights.NewHTTPSource(ts.URL)
	require.NoError(t, err)
	got, err := src.Fetch(context.Background(), flights.Departures)
	require.NoError(t, err)
	assert.Equal(t, flights.Fixture(flights.Departures), got)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s, err := New(Options{Source: &countingSource{}})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestClientAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", clientAddr(r))

	r.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", clientAddr(r))
	assert.False(t, strings.Contains(clientAddr(r), ":"))
}
