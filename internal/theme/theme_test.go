package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flightboard/internal/prefs"
)

func TestNewStore_FallsBackToSystemPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	dark := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return true }})
	assert.Equal(t, Dark, dark.Current())

	light := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return false }})
	assert.Equal(t, Light, light.Current())
}

func TestNewStore_SavedPreferenceWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\n"), 0o644))

	s := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return true }})
	assert.Equal(t, Light, s.Current())
}

func TestStore_TogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	s := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return false }})

	mode, err := s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)
	assert.Equal(t, Dark, s.Current())

	p, err := prefs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, p.Theme)

	reloaded := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return false }})
	assert.Equal(t, Dark, reloaded.Current())
}

func TestStore_ToggleTwiceRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	s := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return true }})

	_, err := s.Toggle()
	require.NoError(t, err)
	_, err = s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, s.Current())
}

func TestStore_Subscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	s := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return false }})

	var seen []Mode
	cancel := s.Subscribe(func(m Mode) { seen = append(seen, m) })

	_, _ = s.Toggle()
	_, _ = s.Toggle()
	cancel()
	_, _ = s.Toggle()

	assert.Equal(t, []Mode{Dark, Light}, seen)
}

func TestStore_ToggleSaveFailureKeepsMode(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	// A path below a regular file cannot be created.
	path := filepath.Join(blocker, "prefs.toml")

	s := NewStore(Options{PrefsPath: path, SystemDark: func() bool { return false }})
	mode, err := s.Toggle()
	assert.Error(t, err)
	assert.Equal(t, Dark, mode)
	assert.Equal(t, Dark, s.Current())
}
