package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flightboard.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestTail_LastEntriesOldestFirst(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf(`{"level":"info","ts":"2026-01-02T10:00:0%dZ","msg":"line %d"}`, i%10, i))
	}
	path := writeLog(t, lines...)

	entries, err := Tail(path, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "line 8", entries[0].Message)
	assert.Equal(t, "line 10", entries[2].Message)

	entries, err = Tail(path, 50)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestTail_DecodesFields(t *testing.T) {
	path := writeLog(t,
		`{"level":"warn","ts":"2026-01-02T10:00:00Z","logger":"board","caller":"board/controller.go:190","msg":"fetch failed","view":"departures","consecutive_failures":2}`,
		`not json`,
	)

	entries, err := Tail(path, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, "warn", e.Level)
	assert.Equal(t, "board", e.Logger)
	assert.Equal(t, "fetch failed", e.Message)
	assert.Equal(t, []string{"consecutive_failures=2", "view=departures"}, e.Fields)

	assert.Equal(t, Entry{Message: "not json"}, entries[1])
}

func TestTail_MissingFileAndStderr(t *testing.T) {
	entries, err := Tail(filepath.Join(t.TempDir(), "missing.log"), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Tail(Stderr, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTail_RoundTripsLoggerOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flightboard.log")
	logger, err := New(path, "debug")
	require.NoError(t, err)
	logger.Named("board").Infow("fetch succeeded", "view", "arrivals", "records", 8)
	require.NoError(t, logger.Sync())

	entries, err := Tail(path, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "board", entries[0].Logger)
	assert.Equal(t, "fetch succeeded", entries[0].Message)
	assert.Equal(t, []string{"records=8", "view=arrivals"}, entries[0].Fields)
	assert.NotEmpty(t, entries[0].Time)
}
