package flights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "http://127.0.0.1:8088"},
		{"localhost:9000", "http://localhost:9000"},
		{"https://board.example.com/api?x=1", "https://board.example.com"},
	}
	for _, tt := range tests {
		u, err := parseBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, u.String())
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	var gotPath, gotAccept, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Fixture(Arrivals))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL)
	require.NoError(t, err)

	got, err := src.Fetch(context.Background(), Arrivals)
	require.NoError(t, err)
	assert.Equal(t, Fixture(Arrivals), got)
	assert.Equal(t, "/api/flights/arrivals", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestHTTPSource_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL)
	require.NoError(t, err)
	got, err := src.Fetch(context.Background(), Departures)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHTTPSource_FailuresAreFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}},
		{"malformed", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
		{"wrong shape", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":1}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src, err := NewHTTPSource(srv.URL)
			require.NoError(t, err)
			_, err = src.Fetch(context.Background(), Departures)

			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, Departures, fe.View)
		})
	}
}

func TestHTTPSource_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	src, err := NewHTTPSource(addr)
	require.NoError(t, err)
	_, err = src.Fetch(context.Background(), Departures)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
}
