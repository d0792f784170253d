package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// fakeStore serves blocks 0..latest unless overridden per height.
type fakeStore struct {
	mu       sync.Mutex
	latest   uint64
	empty    bool
	override map[uint64][]error
	calls    map[uint64]int
}

func newFakeStore(latest uint64) *fakeStore {
	return &fakeStore{latest: latest, override: map[uint64][]error{}, calls: map[uint64]int{}}
}

func emptyStore() *fakeStore {
	s := newFakeStore(0)
	s.empty = true
	return s
}

// failWith makes successive fetches of height return errs in order; a nil
// entry falls through to the default behaviour.
func (s *fakeStore) failWith(height uint64, errs ...error) *fakeStore {
	s.override[height] = errs
	return s
}

func (s *fakeStore) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := s.calls[height]
	s.calls[height] = n + 1
	if errs, ok := s.override[height]; ok {
		idx := n
		if idx >= len(errs) {
			idx = len(errs) - 1
		}
		if errs[idx] != nil {
			return nil, errs[idx]
		}
	}
	if s.empty || height > s.latest {
		return nil, fmt.Errorf("%w: height %d", chain.ErrNotFound, height)
	}
	return &model.Block{Height: height, Hash: fmt.Sprintf("%064x", height)}, nil
}

func (s *fakeStore) callsFor(height uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[height]
}

func (s *fakeStore) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// onlyHeight serves exactly one height.
type onlyHeight struct {
	height uint64
	calls  int
}

func (o *onlyHeight) FetchBlock(_ context.Context, height uint64) (*model.Block, error) {
	o.calls++
	if height != o.height {
		return nil, chain.ErrNotFound
	}
	return &model.Block{Height: height, Hash: "ff"}, nil
}

type stubIndex struct {
	height uint64
	err    error
}

func (s stubIndex) LatestHeight(context.Context) (uint64, error) {
	return s.height, s.err
}

func (s *fakeStore) setLatest(latest uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = latest
}

type recordingDisplay struct {
	mu       sync.Mutex
	pages    []Page
	stats    []Stats
	statuses []string
	// calls is "page", "stats" or "status" per display call, in order.
	calls []string
}

func (d *recordingDisplay) ShowPage(page Page) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pages = append(d.pages, page)
	d.calls = append(d.calls, "page")
}

func (d *recordingDisplay) ShowStats(stats Stats) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats = append(d.stats, stats)
	d.calls = append(d.calls, "stats")
}

func (d *recordingDisplay) ShowStatus(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = append(d.statuses, status)
	d.calls = append(d.calls, "status")
}

// callsWithout returns the display calls minus those of kind.
func (d *recordingDisplay) callsWithout(kind string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, c := range d.calls {
		if c != kind {
			out = append(out, c)
		}
	}
	return out
}

func (d *recordingDisplay) lastPage() (Page, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pages) == 0 {
		return Page{}, 0
	}
	return d.pages[len(d.pages)-1], len(d.pages)
}

func (d *recordingDisplay) lastStats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.stats) == 0 {
		return Stats{}
	}
	return d.stats[len(d.stats)-1]
}

func (d *recordingDisplay) lastStatus() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.statuses) == 0 {
		return ""
	}
	return d.statuses[len(d.statuses)-1]
}

func (d *recordingDisplay) counts() (pages, stats, statuses int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pages), len(d.stats), len(d.statuses)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }
