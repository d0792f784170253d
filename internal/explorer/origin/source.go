// Package origin reads block documents from a static HTTP file origin.
package origin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultMaxBodyBytes = 4 << 20

type (
	// Metrics records origin request outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// HTTPDoer executes HTTP requests.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)

// Config describes where and how fast the origin is read.
type Config struct {
	// BaseURLs are tried in order; later entries are relays used only when
	// earlier ones fail transiently.
	BaseURLs []string
	// RPS caps requests per second across all base URLs. Zero disables the cap.
	RPS int
	// CacheBust appends ?v=<unix-ms> so intermediaries never serve stale misses.
	CacheBust bool
}

// Source implements chain.BlockSource and chain.LatestIndex over HTTP GET.
type Source struct {
	client    HTTPDoer
	bases     []*url.URL
	limiter   ratelimit.Limiter
	metrics   Metrics
	logger    *zap.Logger
	cacheBust bool
	now       func() time.Time
	maxBody   int64
}

// NewSource validates cfg and builds a Source.
func NewSource(cfg Config, client HTTPDoer, metrics Metrics, logger *zap.Logger) (*Source, error) {
	if len(cfg.BaseURLs) == 0 {
		return nil, errors.New("origin base url is required")
	}
	if client == nil {
		return nil, errors.New("origin http client is required")
	}
	if metrics == nil {
		return nil, errors.New("origin metrics is required")
	}

	bases := make([]*url.URL, 0, len(cfg.BaseURLs))
	for _, raw := range cfg.BaseURLs {
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse origin url %q: %w", raw, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return nil, fmt.Errorf("origin url scheme %q not supported", parsed.Scheme)
		}
		if parsed.Host == "" {
			return nil, fmt.Errorf("origin url %q missing host", raw)
		}
		bases = append(bases, parsed)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Source{
		client:    client,
		bases:     bases,
		limiter:   limiter,
		metrics:   metrics,
		logger:    logger,
		cacheBust: cfg.CacheBust,
		now:       time.Now,
		maxBody:   defaultMaxBodyBytes,
	}, nil
}

// LatestHeight reads latest.json.
func (s *Source) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("latest_height", err, started)
	}()

	body, err := s.get(ctx, model.LatestFileName)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", model.LatestFileName, err)
	}
	height, err = model.DecodeLatest(body)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", model.LatestFileName, chain.ErrMalformed, err)
	}
	return height, nil
}

// FetchBlock reads and validates the document for height.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("fetch_block", err, started)
	}()

	name := model.BlockFileName(height)
	body, err := s.get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	block, err = model.DecodeBlock(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, chain.ErrMalformed, err)
	}
	if block.Height != height {
		return nil, fmt.Errorf("%s: %w: document height %d", name, chain.ErrMalformed, block.Height)
	}
	return block, nil
}

func (s *Source) get(ctx context.Context, name string) ([]byte, error) {
	var lastErr error
	for i, base := range s.bases {
		body, err := s.getFrom(ctx, base, name)
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, chain.ErrTransient) || ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
		if i+1 < len(s.bases) {
			s.logger.Debug("origin failed, trying fallback",
				zap.String("origin", base.Host),
				zap.String("fallback", s.bases[i+1].Host),
				zap.Error(err),
			)
		}
	}
	return nil, lastErr
}

func (s *Source) getFrom(ctx context.Context, base *url.URL, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.limiter.Take()

	target := base.JoinPath(name)
	if s.cacheBust {
		q := target.Query()
		q.Set("v", strconv.FormatInt(s.now().UnixMilli(), 10))
		target.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", chain.ErrTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch code := resp.StatusCode; {
	case code >= 200 && code < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody))
		if err != nil {
			return nil, fmt.Errorf("%w: read body: %w", chain.ErrTransient, err)
		}
		return body, nil
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout, code >= 500:
		return nil, fmt.Errorf("%w: status %d from %s", chain.ErrTransient, code, base.Host)
	default:
		return nil, fmt.Errorf("%w: status %d", chain.ErrNotFound, code)
	}
}
