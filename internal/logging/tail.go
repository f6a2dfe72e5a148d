package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// Entry is one line of a JSON log file written by New.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Message string
	// Fields holds the remaining structured fields as "key=value", sorted
	// by key.
	Fields []string
}

// Tail returns the last n entries of the log file at path, oldest first.
// A missing file yields no entries. Lines that are not JSON objects are
// returned with the whole line as the message.
func Tail(path string, n int) ([]Entry, error) {
	lines, err := tailLines(path, n)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseEntry(line))
	}
	return entries, nil
}

func tailLines(path string, n int) ([]string, error) {
	if n <= 0 || strings.TrimSpace(path) == "" || path == Stderr {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, n)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % n
		count = min(count+1, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < n {
		return slices.Clone(ring[:count]), nil
	}
	lines := make([]string, 0, n)
	for i := range n {
		lines = append(lines, ring[(idx+i)%n])
	}
	return lines, nil
}

func parseEntry(line string) Entry {
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Entry{Message: line}
	}

	e := Entry{
		Time:    take(fields, "ts"),
		Level:   take(fields, "level"),
		Logger:  take(fields, "logger"),
		Message: take(fields, "msg"),
	}
	delete(fields, "caller")
	delete(fields, "stacktrace")
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		e.Fields = append(e.Fields, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return e
}

// take removes key from fields and returns it as a string.
func take(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok {
		return ""
	}
	delete(fields, key)
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
