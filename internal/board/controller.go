package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/flightboard/internal/flights"
	"github.com/five82/flightboard/internal/state"
)

const defaultDebounce = 300 * time.Millisecond

var (
	// ErrStale is returned by Refresh when a newer fetch was issued while
	// this one was in flight. Its result was discarded.
	ErrStale = errors.New("stale response discarded")
	// ErrClosed is returned once Close has been called.
	ErrClosed = errors.New("board controller closed")
)

// Options configure a Controller. Zero values select defaults.
type Options struct {
	Logger       *zap.SugaredLogger
	RefreshEvery time.Duration // zero uses 60s
	Debounce     time.Duration // zero uses 300ms; negative applies search immediately
	SearchMode   SearchMode
	Sort         SortState // zero uses time ascending
	View         flights.ViewMode
	Store        *state.Store[Snapshot]
}

// Controller owns the board state: raw records, view, facets, sort, search
// and selection. It fetches from a Source on start, on a fixed interval and
// on view changes, and publishes a Snapshot to its store after every change.
// It is safe for concurrent use.
type Controller struct {
	src          flights.Source
	log          *zap.SugaredLogger
	store        *state.Store[Snapshot]
	refreshEvery time.Duration
	search       *debouncer
	immediate    bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	closed      bool
	started     bool
	gen         uint64
	view        flights.ViewMode
	phase       Phase
	raw         []flights.Record
	filters     FilterState
	sort        SortState
	term        string
	mode        SearchMode
	selected    *flights.Record
	errMsg      string
	err         error
	failures    int
	lastFetched time.Time
}

// New builds a controller in the loading phase. Call Start to begin
// fetching and Close to release its goroutines and timers.
func New(src flights.Source, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	store := opts.Store
	if store == nil {
		store = state.New(CloneSnapshot)
	}
	view := opts.View
	if view == "" {
		view = flights.Departures
	}
	mode := opts.SearchMode
	if mode == "" {
		mode = SearchOverride
	}
	delay := opts.Debounce
	if delay == 0 {
		delay = defaultDebounce
	}
	sort := opts.Sort
	if sort.Key == "" {
		sort = DefaultSort()
	}
	if sort.Direction == "" {
		sort.Direction = Asc
	}
	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		src:          src,
		log:          logger,
		store:        store,
		refreshEvery: refresh,
		search:       newDebouncer(delay),
		immediate:    delay < 0,
		ctx:          ctx,
		cancel:       cancel,
		view:         view,
		phase:        PhaseLoading,
		filters:      DefaultFilters(),
		sort:         sort,
		mode:         mode,
	}
	c.mu.Lock()
	c.publishLocked()
	c.mu.Unlock()
	return c
}

// Store returns the snapshot store the controller publishes to.
func (c *Controller) Store() *state.Store[Snapshot] {
	return c.store
}

// Snapshot returns the current board state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CloneSnapshot(c.snapshotLocked())
}

// Start launches the refresh loop: one fetch now, then one per interval.
// Calling Start more than once has no effect.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.started {
		return nil
	}
	c.started = true
	c.wg.Add(1)
	go c.poll(c.refreshEvery)
	return nil
}

// Refresh fetches the current view and applies the result if no newer fetch
// was issued meanwhile. It returns the fetch error, ErrStale or ErrClosed.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	gen, view := c.beginFetchLocked()
	c.mu.Unlock()
	return c.fetch(ctx, gen, view)
}

// beginFetchLocked issues a new generation. Any fetch still in flight
// becomes stale.
func (c *Controller) beginFetchLocked() (uint64, flights.ViewMode) {
	c.gen++
	c.phase = PhaseLoading
	c.errMsg = ""
	c.err = nil
	c.publishLocked()
	c.log.Debugw("fetch started", "view", c.view, "generation", c.gen)
	return c.gen, c.view
}

func (c *Controller) fetch(ctx context.Context, gen uint64, view flights.ViewMode) error {
	records, err := c.src.Fetch(ctx, view)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if gen != c.gen {
		c.log.Debugw("discarding stale response", "view", view, "generation", gen, "latest", c.gen)
		return ErrStale
	}
	if err != nil {
		c.phase = PhaseError
		c.raw = nil
		c.selected = nil
		c.errMsg = ErrorMessage
		c.err = err
		c.failures++
		c.publishLocked()
		c.log.Warnw("fetch failed", "view", view, "error", err, "consecutive_failures", c.failures)
		return err
	}

	c.phase = PhaseReady
	c.raw = records
	c.failures = 0
	c.lastFetched = time.Now()
	c.refreshSelectionLocked()
	c.publishLocked()
	c.log.Infow("fetch succeeded", "view", view, "records", len(records))
	return nil
}

// spawnLocked runs fn on a tracked goroutine. Callers hold c.mu and have
// checked c.closed.
func (c *Controller) spawnLocked(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

// SetView switches the board. The record list and selection are cleared and
// a fetch for the new view starts; facets, sort and search are kept.
func (c *Controller) SetView(view flights.ViewMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.setViewLocked(view)
	return nil
}

// ToggleView switches between departures and arrivals.
func (c *Controller) ToggleView() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.setViewLocked(c.view.Other())
	return nil
}

func (c *Controller) setViewLocked(view flights.ViewMode) {
	if view == c.view {
		return
	}
	c.log.Infow("switching view", "from", c.view, "to", view)
	c.view = view
	c.raw = nil
	c.selected = nil
	gen, v := c.beginFetchLocked()
	c.spawnLocked(func() { _ = c.fetch(c.ctx, gen, v) })
}

// SetFacet sets one facet to value, or All.
func (c *Controller) SetFacet(f Facet, value string) error {
	return c.mutate(func() { c.filters = c.filters.With(f, value) })
}

// ResetFilters sets every facet back to All.
func (c *Controller) ResetFilters() error {
	return c.mutate(func() { c.filters = DefaultFilters() })
}

// ToggleSort selects key, flipping the direction if it is already active.
func (c *Controller) ToggleSort(key SortKey) error {
	return c.mutate(func() { c.sort = c.sort.Toggle(key) })
}

// SetSearch applies term immediately and drops any pending debounced term.
func (c *Controller) SetSearch(term string) error {
	c.search.Cancel()
	return c.setSearch(term)
}

func (c *Controller) setSearch(term string) error {
	return c.mutate(func() { c.term = term })
}

// QueueSearch applies term after the debounce period unless another call
// replaces it first.
func (c *Controller) QueueSearch(term string) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if c.immediate {
		return c.setSearch(term)
	}
	c.search.Trigger(func() { _ = c.setSearch(term) })
	return nil
}

// ClearSearch removes the search term.
func (c *Controller) ClearSearch() error {
	return c.SetSearch("")
}

// Select marks the record with id as selected. It reports whether such a
// record exists in the current list.
func (c *Controller) Select(id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false, ErrClosed
	}
	for _, r := range c.raw {
		if r.ID == id {
			sel := r
			c.selected = &sel
			c.publishLocked()
			return true, nil
		}
	}
	return false, nil
}

// ClearSelection closes the detail view.
func (c *Controller) ClearSelection() error {
	return c.mutate(func() { c.selected = nil })
}

// Close stops the refresh loop and the search debouncer and waits for
// in-flight fetches. No callback runs after Close returns.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.search.Stop()
	c.wg.Wait()
	return nil
}

func (c *Controller) mutate(fn func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	fn()
	c.publishLocked()
	return nil
}

// refreshSelectionLocked swaps the selection for the fetched copy of the
// same flight, or drops it when the flight is gone.
func (c *Controller) refreshSelectionLocked() {
	if c.selected == nil {
		return
	}
	for _, r := range c.raw {
		if r.ID == c.selected.ID {
			sel := r
			c.selected = &sel
			return
		}
	}
	c.selected = nil
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		View:                c.view,
		Phase:               c.phase,
		Records:             Visible(c.raw, c.filters, c.sort, c.term, c.mode, c.view),
		Total:               len(c.raw),
		Options:             CollectFacetOptions(c.raw),
		Filters:             c.filters,
		Sort:                c.sort,
		Search:              c.term,
		SearchMode:          c.mode,
		Selected:            c.selected,
		Error:               c.errMsg,
		Err:                 c.err,
		ConsecutiveFailures: c.failures,
		LastFetched:         c.lastFetched,
	}
}

func (c *Controller) publishLocked() {
	c.store.Publish(c.snapshotLocked())
}
