// Package theme owns the light/dark display mode. A Store is created once
// at startup and passed to the UI; it is not a global.
package theme

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/flightboard/internal/prefs"
)

// Mode is the active palette.
type Mode string

const (
	Light Mode = prefs.ThemeLight
	Dark  Mode = prefs.ThemeDark
)

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Options configure a Store.
type Options struct {
	// PrefsPath is where the choice is persisted. Empty uses the prefs
	// package default.
	PrefsPath string
	// SystemDark reports the system preference when no choice is saved.
	// Nil uses lipgloss.HasDarkBackground.
	SystemDark func() bool
	Logger     *zap.SugaredLogger
}

// Store holds the current mode and notifies subscribers when it changes.
type Store struct {
	prefsPath string
	log       *zap.SugaredLogger

	mu     sync.RWMutex
	mode   Mode
	subs   map[int]func(Mode)
	nextID int
}

// NewStore initialises the mode from saved preferences, falling back to the
// terminal background.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	systemDark := opts.SystemDark
	if systemDark == nil {
		systemDark = lipgloss.HasDarkBackground
	}

	p, _ := prefs.Load(opts.PrefsPath)
	mode := Mode(p.Theme)
	if mode == "" {
		mode = Light
		if systemDark() {
			mode = Dark
		}
	}
	return &Store{
		prefsPath: opts.PrefsPath,
		log:       logger,
		mode:      mode,
		subs:      make(map[int]func(Mode)),
	}
}

// Current returns the active mode.
func (s *Store) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips the mode, persists it and notifies subscribers. The new mode
// stays active even when saving fails; the save error is returned.
func (s *Store) Toggle() (Mode, error) {
	s.mu.Lock()
	s.mode = s.mode.Other()
	mode := s.mode
	subs := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}

	s.log.Infow("theme toggled", "theme", mode)
	if err := prefs.Save(s.prefsPath, prefs.Prefs{Theme: string(mode)}); err != nil {
		s.log.Warnw("save theme preference", "error", err)
		return mode, fmt.Errorf("save theme: %w", err)
	}
	return mode, nil
}

// Subscribe registers fn to run after every toggle. The returned func
// removes it.
func (s *Store) Subscribe(fn func(Mode)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
