package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/stack"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/view"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/transport"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr     string `long:"addr" env:"API_GATEWAY_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`

	Store          string        `long:"store" env:"API_GATEWAY_STORE" description:"block store: http or clickhouse" choice:"http" choice:"clickhouse" default:"http"`
	BaseURLs       []string      `long:"base-url" env:"API_GATEWAY_BASE_URLS" env-delim:"," description:"origin serving blockNNNN.json; repeat for fallback relays" default:"http://localhost:8080"`
	RPS            int           `long:"rps" env:"API_GATEWAY_RPS" description:"max origin requests per second, 0 for unlimited" default:"20"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"API_GATEWAY_HTTP_TIMEOUT" description:"timeout per origin request" default:"10s"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse store"`
	Ceiling        uint64        `long:"ceiling" env:"API_GATEWAY_CEILING" description:"highest height probed when no latest index answers" default:"8500"`
	PageSize       int           `long:"page-size" env:"API_GATEWAY_PAGE_SIZE" description:"blocks per page" default:"15"`
	Workers        int           `long:"workers" env:"API_GATEWAY_WORKERS" description:"concurrent block fetches per page" default:"8"`
	CacheSize      int           `long:"cache-size" env:"API_GATEWAY_CACHE_SIZE" description:"cached blocks" default:"4096"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"API_GATEWAY_CACHE_TTL" description:"block cache ttl" default:"1h"`
	PollInterval   time.Duration `long:"poll-interval" env:"API_GATEWAY_POLL_INTERVAL" description:"interval between checks for new blocks" default:"26s"`
	Currency       string        `long:"currency" env:"API_GATEWAY_CURRENCY" description:"reward currency unit" default:"BNC"`
	RewardPerBlock uint64        `long:"reward-per-block" env:"API_GATEWAY_REWARD_PER_BLOCK" description:"reward per block used for total rewards" default:"333"`
	FounderWallet  string        `long:"founder-wallet" env:"API_GATEWAY_FOUNDER_WALLET" description:"wallet highlighted in the block list" default:"banncoin.org"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	st, err := stack.Build(stack.Options{
		Store:         config.Store,
		BaseURLs:      config.BaseURLs,
		RPS:           config.RPS,
		HTTPTimeout:   config.HTTPTimeout,
		ClickhouseDSN: config.ClickhouseDSN,
		Ceiling:       config.Ceiling,
		PageSize:      config.PageSize,
		Workers:       config.Workers,
		CacheSize:     config.CacheSize,
		CacheTTL:      config.CacheTTL,
		PollInterval:  config.PollInterval,
	}, newLogDisplay(logger), clock.System{}, logger)
	if err != nil {
		logger.Fatal("Build explorer", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("Close explorer", zap.Error(err))
		}
	}()
	go st.Start(ctx, logger)

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(st.Session))

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	mapper := view.NewMapper(view.Config{
		Currency:       config.Currency,
		RewardPerBlock: config.RewardPerBlock,
		FounderWallet:  config.FounderWallet,
	}, clock.System{})
	rest := transport.NewRESTHandler(st.Session, st.Renderer, mapper, config.PageSize, logger)

	mux.Handle("/", gw)
	mux.Handle("/api/v1/", rest.Routes())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
