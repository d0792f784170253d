// Package main runs the terminal block explorer.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/stack"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/view"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Store          string        `long:"store" env:"EXPLORER_STORE" description:"block store: http or clickhouse" choice:"http" choice:"clickhouse" default:"http"`
	BaseURLs       []string      `long:"base-url" env:"EXPLORER_BASE_URLS" env-delim:"," description:"origin serving blockNNNN.json; repeat for fallback relays" default:"http://localhost:8080"`
	RPS            int           `long:"rps" env:"EXPLORER_RPS" description:"max origin requests per second, 0 for unlimited" default:"20"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"EXPLORER_HTTP_TIMEOUT" description:"timeout per origin request" default:"10s"`
	NoCacheBust    bool          `long:"no-cache-bust" env:"EXPLORER_NO_CACHE_BUST" description:"do not append ?v=<unix-ms> to origin requests"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"EXPLORER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse store"`
	Ceiling        uint64        `long:"ceiling" env:"EXPLORER_CEILING" description:"highest height probed when no latest index answers" default:"8500"`
	ProbeAttempts  int           `long:"probe-attempts" env:"EXPLORER_PROBE_ATTEMPTS" description:"attempts per probe on transient failure" default:"4"`
	InitialBackoff time.Duration `long:"initial-backoff" env:"EXPLORER_INITIAL_BACKOFF" description:"first retry delay of a probe" default:"200ms"`
	PageSize       int           `long:"page-size" env:"EXPLORER_PAGE_SIZE" description:"blocks per page" default:"15"`
	Workers        int           `long:"workers" env:"EXPLORER_WORKERS" description:"concurrent block fetches per page" default:"8"`
	CacheSize      int           `long:"cache-size" env:"EXPLORER_CACHE_SIZE" description:"cached blocks" default:"4096"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"EXPLORER_CACHE_TTL" description:"block cache ttl" default:"1h"`
	PollInterval   time.Duration `long:"poll-interval" env:"EXPLORER_POLL_INTERVAL" description:"interval between checks for new blocks" default:"26s"`
	Currency       string        `long:"currency" env:"EXPLORER_CURRENCY" description:"reward currency unit" default:"BNC"`
	RewardPerBlock uint64        `long:"reward-per-block" env:"EXPLORER_REWARD_PER_BLOCK" description:"reward per block used for total rewards" default:"333"`
	FounderWallet  string        `long:"founder-wallet" env:"EXPLORER_FOUNDER_WALLET" description:"wallet highlighted in the block list" default:"banncoin.org"`
	MetricsAddr    string        `long:"metrics-addr" env:"EXPLORER_METRICS_ADDR" description:"address for metrics server, empty to disable" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("explorer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	mapper := view.NewMapper(view.Config{
		Currency:       cfg.Currency,
		RewardPerBlock: cfg.RewardPerBlock,
		FounderWallet:  cfg.FounderWallet,
	}, clock.System{})
	term := newTerminal(out, mapper)

	st, err := stack.Build(cfg.options(), term, clock.System{}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("close stack", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, cfg.MetricsAddr, logger)
		})
	}

	fmt.Fprintln(out, usage)
	st.Start(gctx, logger)

	lines := readLines(in, logger)
	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				quit, err := dispatch(gctx, st.Session, line)
				if err != nil {
					logger.Debug("command failed", zap.String("command", line), zap.Error(err))
				}
				if quit {
					return nil
				}
			}
		}
	})
	return g.Wait()
}

// readLines feeds input lines until EOF. The reader goroutine is left behind
// on shutdown since a blocked terminal read cannot be interrupted.
func readLines(in io.Reader, logger *zap.Logger) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Warn("read commands", zap.Error(err))
		}
	}()
	return lines
}

func (c config) options() stack.Options {
	return stack.Options{
		Store:          c.Store,
		BaseURLs:       c.BaseURLs,
		RPS:            c.RPS,
		HTTPTimeout:    c.HTTPTimeout,
		NoCacheBust:    c.NoCacheBust,
		ClickhouseDSN:  c.ClickhouseDSN,
		Ceiling:        c.Ceiling,
		ProbeAttempts:  c.ProbeAttempts,
		InitialBackoff: c.InitialBackoff,
		PageSize:       c.PageSize,
		Workers:        c.Workers,
		CacheSize:      c.CacheSize,
		CacheTTL:       c.CacheTTL,
		PollInterval:   c.PollInterval,
	}
}

var _ service.Display = (*terminal)(nil)

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
