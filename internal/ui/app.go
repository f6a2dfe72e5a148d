package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/flightboard/internal/board"
	"github.com/five82/flightboard/internal/state"
	"github.com/five82/flightboard/internal/theme"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *board.Controller
	Theme      *theme.Store
	Logger     *zap.SugaredLogger
	// LogPath is the file shown by the activity dialog.
	LogPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	ctrl    *board.Controller
	store   *state.Store[board.Snapshot]
	themes  *theme.Store
	log     *zap.SugaredLogger
	logPath string
	keys    keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot board.Snapshot
	version  uint64

	// Board cursor, kept on the same flight ID across refreshes
	selectedRow int
	cursorID    int

	spinner spinner.Model

	// Search box
	search    textinput.Model
	searching bool

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	themes := opts.Theme
	if themes == nil {
		themes = theme.NewStore(theme.Options{Logger: logger})
	}

	palette := ThemeFor(themes.Current())

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Accent))

	ti := textinput.New()
	ti.Placeholder = "flight, airline or city"
	ti.CharLimit = 64
	ti.Prompt = ""

	m := Model{
		ctx:     ctx,
		ctrl:    opts.Controller,
		store:   opts.Controller.Store(),
		themes:  themes,
		log:     logger,
		logPath: opts.LogPath,
		keys:    DefaultKeyMap(),
		theme:   palette,
		spinner: sp,
		search:  ti,
	}
	m.applySnapshot(m.store.Version(), m.ctrl.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForSnapshot(m.ctx, m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-12, 10)
		m.ready = true
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg.version, msg.snapshot)
		return m, waitForSnapshot(m.ctx, m.store)

	case themeMsg:
		m.setTheme(theme.Mode(msg))
		return m, nil

	case setFacetMsg:
		m.do("set filter", m.ctrl.SetFacet(msg.facet, msg.value))
		return m, nil

	case resetFiltersMsg:
		m.do("reset filters", m.ctrl.ResetFilters())
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, board.ErrStale) {
			m.log.Debugw("manual refresh failed", "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// renderMain renders the header, command bar, search line and board.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	return b.String()
}

// handleKey routes a key press to the active overlay, the search box or
// the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.ToggleTheme):
		mode, err := m.themes.Toggle()
		if err != nil {
			m.log.Warnw("theme preference not saved", "error", err)
		}
		m.setTheme(mode)
	case key.Matches(msg, m.keys.ToggleView):
		m.do("toggle view", m.ctrl.ToggleView())
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.snapshot.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.do("clear search", m.ctrl.ClearSearch())
	case key.Matches(msg, m.keys.Filters):
		m.modal = newFilterModal(m.snapshot)
	case key.Matches(msg, m.keys.ResetFilters):
		m.do("reset filters", m.ctrl.ResetFilters())
	case key.Matches(msg, m.keys.Refresh):
		return m, refreshCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Logs):
		m.modal = newLogModal(m.logPath)
	case key.Matches(msg, m.keys.Details):
		m.openDetails()
	case key.Matches(msg, m.keys.SortTime):
		m.do("sort", m.ctrl.ToggleSort(board.KeyTime))
	case key.Matches(msg, m.keys.SortFlight):
		m.do("sort", m.ctrl.ToggleSort(board.KeyFlightNumber))
	case key.Matches(msg, m.keys.SortLocation):
		m.do("sort", m.ctrl.ToggleSort(board.LocationKey(m.snapshot.View)))
	case key.Matches(msg, m.keys.SortStatus):
		m.do("sort", m.ctrl.ToggleSort(board.KeyStatus))
	case key.Matches(msg, m.keys.SortTerminal):
		m.do("sort", m.ctrl.ToggleSort(board.KeyTerminal))
	case key.Matches(msg, m.keys.SortGate):
		m.do("sort", m.ctrl.ToggleSort(board.KeyGate))
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.bodyHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.bodyHeight())
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.snapshot.Records))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.snapshot.Records))
	}

	return m, nil
}

// handleSearchKey feeds the search box. Each edit is queued on the
// controller's debouncer; enter or esc applies the final term at once.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Escape) {
		m.searching = false
		m.search.Blur()
		m.do("search", m.ctrl.SetSearch(m.search.Value()))
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		if err := m.ctrl.QueueSearch(after); err != nil {
			m.log.Debugw("queue search", "error", err)
		}
	}
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if !closed {
		m.modal = next
		return m, cmd
	}
	_, wasDetail := m.modal.(*detailModal)
	m.modal = nil
	if wasDetail {
		m.do("clear selection", m.ctrl.ClearSelection())
	}
	return m, cmd
}

// openDetails selects the flight under the cursor and opens its detail
// dialog.
func (m *Model) openDetails() {
	rec, ok := m.cursorRecord()
	if !ok {
		return
	}
	found, err := m.ctrl.Select(rec.ID)
	m.do("select flight", err)
	if found && m.snapshot.Selected != nil {
		m.modal = newDetailModal(*m.snapshot.Selected, m.snapshot.View)
	}
}

// do logs a failed controller call and pulls the resulting snapshot so the
// next frame reflects it without waiting for the store notification.
func (m *Model) do(action string, err error) {
	if err != nil {
		m.log.Debugw(action, "error", err)
	}
	m.applySnapshot(m.store.Version(), m.ctrl.Snapshot())
}

// applySnapshot installs snap unless a newer one was already applied.
func (m *Model) applySnapshot(version uint64, snap board.Snapshot) {
	if version < m.version {
		return
	}
	m.version = version
	m.snapshot = snap
	m.syncCursor()

	switch md := m.modal.(type) {
	case *detailModal:
		if snap.Selected == nil {
			m.modal = nil
		} else {
			md.record = *snap.Selected
			md.view = snap.View
		}
	case *filterModal:
		md.sync(snap)
	}
}

func (m *Model) setTheme(mode theme.Mode) {
	m.theme = ThemeFor(mode)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
}

// Messages

type snapshotMsg struct {
	version  uint64
	snapshot board.Snapshot
}

type themeMsg theme.Mode

type refreshDoneMsg struct{ err error }

// Commands

// waitForSnapshot blocks until the controller publishes, then delivers the
// latest snapshot.
func waitForSnapshot(ctx context.Context, store *state.Store[board.Snapshot]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-store.Changed():
			version := store.Version()
			return snapshotMsg{version: version, snapshot: store.Snapshot()}
		}
	}
}

func refreshCmd(ctx context.Context, ctrl *board.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		return refreshDoneMsg{err: ctrl.Refresh(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Toggle runs on the event loop, so the notification is sent from a
	// separate goroutine.
	unsubscribe := m.themes.Subscribe(func(mode theme.Mode) {
		go p.Send(themeMsg(mode))
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
