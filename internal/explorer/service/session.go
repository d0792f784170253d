package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"go.uber.org/zap"
)

var (
	// ErrNoBlocks reports that the store holds no block yet.
	ErrNoBlocks = errors.New("no blocks found")
	// ErrSuperseded reports a render discarded because a newer one started.
	ErrSuperseded = errors.New("render superseded")
)

// State is the client cursor. Latest is meaningful only when Known is set.
type State struct {
	Latest   uint64
	Known    bool
	Page     int
	PageSize int
}

// Stats are the aggregate counters shown next to the block list.
type Stats struct {
	Latest      uint64
	Found       bool
	TotalBlocks uint64
	TotalPages  int
	UpdatedAt   time.Time
}

// Session owns the client state and is the only writer to the Display.
type Session struct {
	resolver LatestResolver
	renderer PageRenderer
	display  Display
	metrics  SessionMetrics
	clock    clock.Clock
	logger   *zap.Logger

	mu    sync.Mutex
	state State
	// intent is the page of the newest render started; state.Page only
	// moves once that render lands.
	intent int
	stats  Stats
	// statsPending marks counters not yet shown; the next render that lands
	// shows them next to the page their mining rate is derived from.
	statsPending bool
	last         *Page

	generation   atomic.Uint64
	cancelRender context.CancelFunc
}

// NewSession builds a Session showing pageSize blocks per page.
func NewSession(
	resolver LatestResolver,
	renderer PageRenderer,
	display Display,
	metrics SessionMetrics,
	pageSize int,
	clk clock.Clock,
	logger *zap.Logger,
) (*Session, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if display == nil {
		return nil, fmt.Errorf("display is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("session metrics is nil")
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		resolver: resolver,
		renderer: renderer,
		display:  display,
		metrics:  metrics,
		clock:    clk,
		logger:   logger.Named("session"),
		state:    State{Page: 1, PageSize: pageSize},
		intent:   1,
	}, nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns the last published counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// LastPage returns the page currently on display.
func (s *Session) LastPage() (Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Page{}, false
	}
	return *s.last, true
}

// LoadLatest resolves the newest block and shows page 1.
func (s *Session) LoadLatest(ctx context.Context) error {
	s.status("Loading latest block...")

	res, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.status(describeResolveError(err))
		return fmt.Errorf("resolve latest: %w", err)
	}
	if !res.Found {
		s.mu.Lock()
		s.state.Known = false
		s.publishStatsLocked()
		s.display.ShowStatus("No blocks found yet. Waiting for the miner to produce block #0.")
		s.mu.Unlock()
		return ErrNoBlocks
	}

	s.mu.Lock()
	s.adoptLatestLocked(res.Height)
	s.mu.Unlock()

	_, err = s.render(ctx, 1, nil)
	return err
}

// GoToPage shows page n.
func (s *Session) GoToPage(ctx context.Context, n int) error {
	st := s.Snapshot()
	if !st.Known {
		s.status("No blocks loaded yet.")
		return ErrNoBlocks
	}
	if _, err := PageWindow(st.Latest, st.PageSize, n); err != nil {
		total, _ := TotalPages(st.Latest, st.PageSize)
		s.status(fmt.Sprintf("Page %d does not exist (1-%d).", n, total))
		return err
	}
	_, err := s.render(ctx, n, nil)
	return err
}

// NextPage moves one page towards genesis.
func (s *Session) NextPage(ctx context.Context) error {
	st := s.Snapshot()
	if !st.Known {
		s.status("No blocks loaded yet.")
		return ErrNoBlocks
	}
	total, err := TotalPages(st.Latest, st.PageSize)
	if err != nil {
		return err
	}
	if st.Page >= total {
		s.status("Already on the oldest page.")
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, st.Page+1, total)
	}
	_, err = s.render(ctx, st.Page+1, nil)
	return err
}

// PreviousPage moves one page towards the latest block.
func (s *Session) PreviousPage(ctx context.Context) error {
	st := s.Snapshot()
	if !st.Known {
		s.status("No blocks loaded yet.")
		return ErrNoBlocks
	}
	if st.Page <= 1 {
		s.status("Already on the newest page.")
		return fmt.Errorf("%w: page 0", ErrPageOutOfRange)
	}
	_, err := s.render(ctx, st.Page-1, nil)
	return err
}

// JumpTo shows the page holding height and highlights it.
func (s *Session) JumpTo(ctx context.Context, height uint64) error {
	st := s.Snapshot()
	if !st.Known {
		s.status("No blocks loaded yet.")
		return ErrNoBlocks
	}
	page, err := PageOf(st.Latest, height, st.PageSize)
	if err != nil {
		s.status(fmt.Sprintf("Block #%d does not exist yet (latest is #%d).", height, st.Latest))
		return err
	}
	_, err = s.render(ctx, page, &height)
	return err
}

// Poll re-resolves the latest height. A higher height updates the counters
// and refreshes the view only when page 1 is showing. Failures leave the
// state and the view untouched.
func (s *Session) Poll(ctx context.Context) (bool, error) {
	res, err := s.resolver.Resolve(ctx)
	if err != nil {
		return false, fmt.Errorf("resolve latest: %w", err)
	}
	if !res.Found {
		return false, nil
	}

	s.mu.Lock()
	if s.state.Known && res.Height <= s.state.Latest {
		s.mu.Unlock()
		return false, nil
	}
	previous, known := s.state.Latest, s.state.Known
	s.adoptLatestLocked(res.Height)
	onFirst := s.intent <= 1
	s.mu.Unlock()

	s.logger.Info("new blocks",
		zap.Uint64("latest", res.Height),
		zap.Uint64("previous", previous),
		zap.Bool("previously_known", known))

	if !onFirst {
		s.mu.Lock()
		s.showStatsLocked()
		s.mu.Unlock()
		return true, nil
	}
	if _, err := s.render(ctx, 1, nil); err != nil && !errors.Is(err, ErrSuperseded) {
		return true, err
	}
	return true, nil
}

func (s *Session) adoptLatestLocked(latest uint64) {
	s.state.Latest = latest
	s.state.Known = true
	s.metrics.ObserveLatest(latest)
	s.updateStatsLocked()
	s.statsPending = true
}

func (s *Session) publishStatsLocked() {
	s.updateStatsLocked()
	s.showStatsLocked()
}

func (s *Session) showStatsLocked() {
	s.statsPending = false
	s.display.ShowStats(s.stats)
}

func (s *Session) updateStatsLocked() {
	stats := Stats{
		Latest:    s.state.Latest,
		Found:     s.state.Known,
		UpdatedAt: s.clock.Now(),
	}
	if s.state.Known {
		stats.TotalBlocks = s.state.Latest + 1
		stats.TotalPages, _ = TotalPages(s.state.Latest, s.state.PageSize)
	}
	s.stats = stats
}

// render runs one generation. Starting a render cancels the previous one; a
// render that is no longer the newest never reaches the display.
func (s *Session) render(ctx context.Context, page int, highlight *uint64) (Page, error) {
	s.mu.Lock()
	if s.cancelRender != nil {
		s.cancelRender()
	}
	rctx, cancel := context.WithCancel(ctx)
	s.cancelRender = cancel
	gen := s.generation.Add(1)
	s.intent = page
	latest, pageSize := s.state.Latest, s.state.PageSize
	s.mu.Unlock()
	defer cancel()

	out, err := s.renderer.Render(rctx, latest, pageSize, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation.Load() {
		s.metrics.ObserveSuperseded()
		s.logger.Debug("discarding superseded render", zap.Int("page", page), zap.Uint64("generation", gen))
		return Page{}, ErrSuperseded
	}
	s.cancelRender = nil
	if err != nil {
		s.intent = s.state.Page
		if s.statsPending {
			s.showStatsLocked()
		}
		s.display.ShowStatus(fmt.Sprintf("Could not load page %d: %v", page, err))
		return Page{}, fmt.Errorf("render page %d: %w", page, err)
	}
	if highlight != nil {
		out = Highlight(out, *highlight)
	}

	s.state.Page = page
	s.last = &out
	s.display.ShowPage(out)
	s.showStatsLocked()
	if n := out.Placeholders(); n > 0 {
		s.display.ShowStatus(fmt.Sprintf("%d block(s) on this page could not be loaded.", n))
	}
	return out, nil
}

func (s *Session) status(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display.ShowStatus(msg)
}

func describeResolveError(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Loading canceled."
	case errors.Is(err, ErrUndetermined):
		return "Could not reach the block store. Will retry."
	default:
		return fmt.Sprintf("Could not determine the latest block: %v", err)
	}
}
