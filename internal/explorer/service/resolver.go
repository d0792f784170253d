package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"go.uber.org/zap"
)

// ErrUndetermined reports that the latest height could not be established
// because probes kept failing transiently. It never means the store is empty.
var ErrUndetermined = errors.New("latest height undetermined")

var (
	errAbsent    = errors.New("absent")
	errMalformed = errors.New("malformed")
)

// probeResult is what one probe learned about a height. A malformed document
// still occupies its height: the store is contiguous, so blocks may exist
// above it.
type probeResult int

const (
	probeAbsent probeResult = iota
	probePresent
	probeMalformed
)

func (r probeResult) occupied() bool { return r != probeAbsent }

// Method records how a Resolution was obtained.
type Method string

const (
	MethodIndex  Method = "index"
	MethodSearch Method = "search"
	MethodScan   Method = "scan"
)

const (
	OutcomeFound        = "found"
	OutcomeEmpty        = "empty"
	OutcomeUndetermined = "undetermined"
	OutcomeCanceled     = "canceled"
)

// Resolution is the answer of a resolve pass. Found is false for an empty
// store; Height is meaningless in that case.
type Resolution struct {
	Height uint64
	Found  bool
	Method Method
}

// ResolverConfig tunes the fallback search.
type ResolverConfig struct {
	Ceiling        uint64
	ProbeAttempts  int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Resolver finds the highest height currently present in a block store.
type Resolver struct {
	source  BlockSource
	index   LatestIndex
	metrics ResolverMetrics
	logger  *zap.Logger

	ceiling    uint64
	attempts   uint64
	newBackOff func() backoff.BackOff
}

// NewResolver builds a Resolver. index may be nil when the store offers no
// latest document; resolution then always searches.
func NewResolver(
	source BlockSource,
	index LatestIndex,
	metrics ResolverMetrics,
	cfg ResolverConfig,
	logger *zap.Logger,
) (*Resolver, error) {
	if source == nil {
		return nil, fmt.Errorf("block source is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("resolver metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	attempts := defaultProbeAttempts
	if cfg.ProbeAttempts > 0 {
		attempts = cfg.ProbeAttempts
	}
	initial := cfg.InitialBackoff
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	maxBackoff := cfg.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}

	return &Resolver{
		source:   source,
		index:    index,
		metrics:  metrics,
		logger:   logger.Named("resolver"),
		ceiling:  cfg.Ceiling,
		attempts: uint64(attempts),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}, nil
}

// Resolve returns the highest existing height. The latest index is preferred;
// any failure there falls back to probing the store.
func (r *Resolver) Resolve(ctx context.Context) (res Resolution, err error) {
	started := time.Now()
	probes := 0
	defer func() {
		r.metrics.ObserveResolve(res.Method, resolveOutcome(res, err), probes, started)
	}()

	if r.index != nil {
		height, indexErr := r.index.LatestHeight(ctx)
		if indexErr == nil {
			return Resolution{Height: height, Found: true, Method: MethodIndex}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Resolution{}, ctxErr
		}
		r.logger.Debug("latest index unavailable, searching",
			zap.String("kind", string(chain.Classify(indexErr))),
			zap.Error(indexErr))
	}

	p := &prober{resolver: r, count: &probes}
	genesis, err := p.probe(ctx, 0)
	if err != nil {
		return Resolution{Method: MethodSearch}, err
	}
	if !genesis.occupied() {
		return r.scan(ctx, p)
	}
	return r.search(ctx, p, genesis)
}

// search assumes height 0 is occupied. It doubles until the first miss (or
// the ceiling), then bisects between the last occupied height and that miss.
func (r *Resolver) search(ctx context.Context, p *prober, genesis probeResult) (Resolution, error) {
	lo, hi := uint64(0), uint64(0)
	loResult := genesis
	bounded := false
	for cur := uint64(1); lo < r.ceiling; cur *= 2 {
		if cur > r.ceiling {
			cur = r.ceiling
		}
		res, err := p.probe(ctx, cur)
		if err != nil {
			return Resolution{Method: MethodSearch}, err
		}
		if !res.occupied() {
			hi, bounded = cur, true
			break
		}
		lo, loResult = cur, res
	}

	for bounded && hi-lo > 1 {
		mid := lo + (hi-lo)/2
		res, err := p.probe(ctx, mid)
		if err != nil {
			return Resolution{Method: MethodSearch}, err
		}
		if res.occupied() {
			lo, loResult = mid, res
		} else {
			hi = mid
		}
	}
	return r.settle(ctx, p, lo, loResult)
}

// settle walks down from the highest occupied height to the nearest block
// that decodes.
func (r *Resolver) settle(ctx context.Context, p *prober, height uint64, res probeResult) (Resolution, error) {
	for res != probePresent {
		if height == 0 {
			r.logger.Warn("no readable block at or below the boundary")
			return Resolution{Method: MethodSearch}, nil
		}
		height--
		var err error
		if res, err = p.probe(ctx, height); err != nil {
			return Resolution{Method: MethodSearch}, err
		}
	}
	return Resolution{Height: height, Found: true, Method: MethodSearch}, nil
}

// scan handles stores without a genesis document: contiguity cannot be
// assumed, so it walks down from the ceiling.
func (r *Resolver) scan(ctx context.Context, p *prober) (Resolution, error) {
	for h := r.ceiling; h > 0; h-- {
		res, err := p.probe(ctx, h)
		if err != nil {
			return Resolution{Method: MethodScan}, err
		}
		if res == probePresent {
			return Resolution{Height: h, Found: true, Method: MethodScan}, nil
		}
	}
	r.logger.Info("no blocks found", zap.Uint64("ceiling", r.ceiling))
	return Resolution{Method: MethodScan}, nil
}

type prober struct {
	resolver *Resolver
	count    *int
}

// probe checks one height, retrying transient failures with backoff.
func (p *prober) probe(ctx context.Context, height uint64) (probeResult, error) {
	*p.count++
	r := p.resolver

	op := func() error {
		_, err := r.source.FetchBlock(ctx, height)
		switch chain.Classify(err) {
		case chain.KindNone:
			return nil
		case chain.KindNotFound:
			return backoff.Permanent(errAbsent)
		case chain.KindMalformed:
			r.logger.Warn("malformed block skipped",
				zap.Uint64("height", height), zap.Error(err))
			return backoff.Permanent(errMalformed)
		case chain.KindCanceled:
			return backoff.Permanent(err)
		default:
			r.logger.Debug("probe failed, retrying", zap.Uint64("height", height), zap.Error(err))
			return err
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), r.attempts-1), ctx)
	err := backoff.Retry(op, b)
	switch {
	case err == nil:
		return probePresent, nil
	case errors.Is(err, errAbsent):
		return probeAbsent, nil
	case errors.Is(err, errMalformed):
		return probeMalformed, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return probeAbsent, err
	default:
		r.logger.Warn("probe exhausted retries", zap.Uint64("height", height), zap.Error(err))
		return probeAbsent, fmt.Errorf("%w: probe %d: %w", ErrUndetermined, height, err)
	}
}

func resolveOutcome(res Resolution, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case err != nil:
		return OutcomeUndetermined
	case res.Found:
		return OutcomeFound
	default:
		return OutcomeEmpty
	}
}
