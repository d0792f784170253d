// Package stack wires a block store, the explorer services and their metrics
// into one unit the commands can start and stop.
package stack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/origin"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	"go.uber.org/zap"
)

const (
	StoreHTTP       = "http"
	StoreClickhouse = "clickhouse"
)

// Options is the flattened configuration shared by the commands.
type Options struct {
	Store string

	BaseURLs    []string
	RPS         int
	HTTPTimeout time.Duration
	NoCacheBust bool

	ClickhouseDSN string

	Ceiling        uint64
	ProbeAttempts  int
	InitialBackoff time.Duration
	PageSize       int
	Workers        int
	CacheSize      int
	CacheTTL       time.Duration
	PollInterval   time.Duration
}

type blockStore interface {
	service.BlockSource
	service.LatestIndex
}

// Stack holds the wired services.
type Stack struct {
	Session  *service.Session
	Renderer *service.Renderer
	Resolver *service.Resolver
	Poller   *service.Poller

	mu      sync.Mutex
	closed  bool
	closers []func() error
}

// Build wires every component; display receives everything the session shows.
func Build(opts Options, display service.Display, clk clock.Clock, logger *zap.Logger) (*Stack, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.System{}
	}

	s := &Stack{}
	store, err := s.openStore(opts, logger)
	if err != nil {
		return nil, err
	}

	s.Resolver, err = service.NewResolver(store, store, metrics.NewResolver(), service.ResolverConfig{
		Ceiling:        opts.Ceiling,
		ProbeAttempts:  opts.ProbeAttempts,
		InitialBackoff: opts.InitialBackoff,
	}, logger)
	if err != nil {
		return nil, s.abort(fmt.Errorf("init resolver: %w", err))
	}

	s.Renderer, err = service.NewRenderer(store, metrics.NewRenderer(), service.RendererConfig{
		Workers:   opts.Workers,
		CacheSize: opts.CacheSize,
		CacheTTL:  opts.CacheTTL,
	}, logger)
	if err != nil {
		return nil, s.abort(fmt.Errorf("init renderer: %w", err))
	}

	s.Session, err = service.NewSession(s.Resolver, s.Renderer, display, metrics.NewSession(), opts.PageSize, clk, logger)
	if err != nil {
		return nil, s.abort(fmt.Errorf("init session: %w", err))
	}

	s.Poller, err = service.NewPoller(s.Session, metrics.NewPoller(), opts.PollInterval, clk, logger)
	if err != nil {
		return nil, s.abort(fmt.Errorf("init poller: %w", err))
	}
	return s, nil
}

// Start loads the latest page and starts polling. A failed first load is not
// fatal: the poller keeps trying. Polling never starts once ctx is done or
// the stack is closed, so Start may run concurrently with Close.
func (s *Stack) Start(ctx context.Context, logger *zap.Logger) {
	if err := s.Session.LoadLatest(ctx); err != nil && !errors.Is(err, service.ErrSuperseded) {
		logger.Warn("initial load failed", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || ctx.Err() != nil {
		return
	}
	s.Poller.Start(ctx)
}

// Close stops the poller and releases the store. Later calls are no-ops.
func (s *Stack) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.Poller != nil {
		s.Poller.Stop()
	}
	s.mu.Unlock()

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

func (s *Stack) abort(err error) error {
	return errors.Join(err, s.Close())
}

func (s *Stack) openStore(opts Options, logger *zap.Logger) (blockStore, error) {
	switch opts.Store {
	case "", StoreHTTP:
		client := &http.Client{Timeout: opts.HTTPTimeout}
		src, err := origin.NewSource(origin.Config{
			BaseURLs:  opts.BaseURLs,
			RPS:       opts.RPS,
			CacheBust: !opts.NoCacheBust,
		}, client, metrics.NewBlockStore(StoreHTTP), logger)
		if err != nil {
			return nil, fmt.Errorf("init http origin: %w", err)
		}
		s.closers = append(s.closers, func() error {
			client.CloseIdleConnections()
			return nil
		})
		return src, nil
	case StoreClickhouse:
		repo, err := clickhouse.NewStore(opts.ClickhouseDSN, metrics.NewBlockStore(StoreClickhouse))
		if err != nil {
			return nil, fmt.Errorf("init clickhouse store: %w", err)
		}
		s.closers = append(s.closers, repo.Close)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store %q", opts.Store)
	}
}
