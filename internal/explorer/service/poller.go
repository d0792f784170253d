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

// ErrPollInFlight reports a poll skipped because another is still running.
var ErrPollInFlight = errors.New("poll already in flight")

// Poller periodically asks a Pollable for new blocks.
type Poller struct {
	target   Pollable
	metrics  PollerMetrics
	interval time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *zap.Logger

	inFlight atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds a Poller that ticks every interval.
func NewPoller(target Pollable, metrics PollerMetrics, interval time.Duration, clk clock.Clock, logger *zap.Logger) (*Poller, error) {
	if target == nil {
		return nil, fmt.Errorf("poll target is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("poller metrics is nil")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Poller{
		target:   target,
		metrics:  metrics,
		interval: interval,
		sleep:    clk.Sleep,
		logger:   logger.Named("poller"),
	}, nil
}

// Start launches the loop. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		p.run(ctx)
	}()
	p.logger.Info("poller started", zap.Duration("interval", p.interval))
}

// Stop cancels the loop and waits for it to exit. Stopping a stopped poller
// is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.logger.Info("poller stopped")
}

// Running reports whether the loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// PollNow runs one poll unless another is in flight.
func (p *Poller) PollNow(ctx context.Context) (advanced bool, err error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug("skipping poll, previous still running")
		return false, ErrPollInFlight
	}
	defer p.inFlight.Store(false)

	started := time.Now()
	defer func() {
		p.metrics.ObservePoll(err, advanced, started)
	}()

	return p.target.Poll(ctx)
}

func (p *Poller) run(ctx context.Context) {
	for {
		if err := p.sleep(ctx, p.interval); err != nil {
			return
		}

		advanced, err := p.PollNow(ctx)
		switch {
		case errors.Is(err, ErrPollInFlight):
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("poll failed, retrying next tick", zap.Error(err))
		case advanced:
			p.logger.Debug("poll picked up new blocks")
		}
	}
}
