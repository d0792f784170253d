package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/view"
)

// terminal prints everything the session shows.
type terminal struct {
	out    io.Writer
	mapper *view.Mapper

	mu   sync.Mutex
	last *service.Page
}

func newTerminal(out io.Writer, mapper *view.Mapper) *terminal {
	return &terminal{out: out, mapper: mapper}
}

func (t *terminal) ShowPage(page service.Page) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = &page
	view.RenderText(t.out, t.mapper.Page(page))
}

func (t *terminal) ShowStats(stats service.Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	view.RenderStats(t.out, t.mapper.Stats(stats, t.last))
}

func (t *terminal) ShowStatus(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "» %s\n", status)
}
