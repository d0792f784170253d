package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Slot is one position on a page. A nil Block marks a placeholder for a
// height that could not be fetched; Err says why.
type Slot struct {
	Height      uint64
	Block       *model.Block
	Err         error
	Highlighted bool
}

// Placeholder reports whether the slot stands in for a missing block.
func (s Slot) Placeholder() bool {
	return s.Block == nil
}

// Page is a fully materialized window, newest block first.
type Page struct {
	Number     int
	TotalPages int
	PageSize   int
	Latest     uint64
	Window     Window
	Slots      []Slot
	// Highlight is meaningful only when HasHighlight is set.
	Highlight    uint64
	HasHighlight bool
}

// Placeholders counts slots without a block.
func (p Page) Placeholders() int {
	n := 0
	for _, s := range p.Slots {
		if s.Placeholder() {
			n++
		}
	}
	return n
}

// HasPrevious reports whether a newer page exists.
func (p Page) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether an older page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// RendererConfig tunes fetch fan-out and the block cache.
type RendererConfig struct {
	Workers   int
	CacheSize int
	CacheTTL  time.Duration
}

// Renderer materializes page windows from a block store.
type Renderer struct {
	source  BlockSource
	metrics RendererMetrics
	logger  *zap.Logger
	workers int
	cache   *expirable.LRU[uint64, *model.Block]
	group   singleflight.Group
}

// NewRenderer builds a Renderer with an always-on block cache.
func NewRenderer(source BlockSource, metrics RendererMetrics, cfg RendererConfig, logger *zap.Logger) (*Renderer, error) {
	if source == nil {
		return nil, fmt.Errorf("block source is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("renderer metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultRenderWorkers
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Renderer{
		source:  source,
		metrics: metrics,
		logger:  logger.Named("renderer"),
		workers: workers,
		cache:   expirable.NewLRU[uint64, *model.Block](size, nil, ttl),
	}, nil
}

// Render fetches every height of page concurrently and assembles the slots in
// descending order. Only context errors and invalid pages fail the render.
func (r *Renderer) Render(ctx context.Context, latest uint64, pageSize, page int) (out Page, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveRender(err, out.Placeholders(), started)
	}()

	window, err := PageWindow(latest, pageSize, page)
	if err != nil {
		return Page{}, err
	}
	total, err := TotalPages(latest, pageSize)
	if err != nil {
		return Page{}, err
	}

	slots, err := workerpool.Map(ctx, r.workers, window.Heights(), r.slot)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Number:     page,
		TotalPages: total,
		PageSize:   pageSize,
		Latest:     latest,
		Window:     window,
		Slots:      slots,
	}, nil
}

// RenderAt renders the page holding height and highlights its slot.
func (r *Renderer) RenderAt(ctx context.Context, latest uint64, pageSize int, height uint64) (Page, error) {
	page, err := PageOf(latest, height, pageSize)
	if err != nil {
		return Page{}, err
	}
	out, err := r.Render(ctx, latest, pageSize, page)
	if err != nil {
		return Page{}, err
	}
	return Highlight(out, height), nil
}

// Highlight marks the slot at height, if present, and returns p.
func Highlight(p Page, height uint64) Page {
	if !p.Window.Contains(height) {
		return p
	}
	slots := make([]Slot, len(p.Slots))
	copy(slots, p.Slots)
	for i := range slots {
		slots[i].Highlighted = slots[i].Height == height
	}
	p.Slots = slots
	p.Highlight = height
	p.HasHighlight = true
	return p
}

// Forget drops height from the cache.
func (r *Renderer) Forget(height uint64) {
	r.cache.Remove(height)
}

func (r *Renderer) slot(ctx context.Context, height uint64) (Slot, error) {
	block, err := r.fetch(ctx, height)
	if err != nil && ctx.Err() == nil {
		r.logger.Debug("fetch failed, retrying once",
			zap.Uint64("height", height), zap.Error(err))
		block, err = r.fetch(ctx, height)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Slot{}, ctxErr
		}
		r.logger.Warn("block unavailable, showing placeholder",
			zap.Uint64("height", height),
			zap.String("kind", string(chain.Classify(err))),
			zap.Error(err))
		return Slot{Height: height, Err: err}, nil
	}
	return Slot{Height: height, Block: block}, nil
}

func (r *Renderer) fetch(ctx context.Context, height uint64) (*model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if block, ok := r.cache.Get(height); ok {
		r.metrics.ObserveCache(true)
		return block, nil
	}
	r.metrics.ObserveCache(false)

	// The shared fetch outlives any single caller: a superseded render must
	// not fail the renders that joined it.
	flight := r.group.DoChan(strconv.FormatUint(height, 10), func() (any, error) {
		block, err := r.source.FetchBlock(context.WithoutCancel(ctx), height)
		if err != nil {
			return nil, err
		}
		r.cache.Add(height, block)
		return block, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Block), nil
	}
}
