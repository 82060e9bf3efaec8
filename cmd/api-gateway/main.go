package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/metrics"
	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/mvsrpc"
	"github.com/goodnatureofminers/mvsprobe/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/mvsprobe/internal/repository/clickhouse"
	"github.com/goodnatureofminers/mvsprobe/internal/script"
	"github.com/goodnatureofminers/mvsprobe/internal/service"
	"github.com/goodnatureofminers/mvsprobe/internal/transport"
)

type config struct {
	RestAddr      string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"API_GATEWAY_RPC_URL" description:"daemon RPC URL, probing is disabled when empty"`
	RPCUser       string        `long:"rpc-user" env:"API_GATEWAY_RPC_USER" description:"daemon RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"API_GATEWAY_RPC_PASSWORD" description:"daemon RPC password"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN, submission history is disabled when empty"`
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
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := script.ParamsForNetwork(string(cfg.Network))
	if err != nil {
		return err
	}
	handlerCfg := transport.HandlerConfig{
		Metrics: metrics.NewHTTPServer(),
		Logger:  logger.Named("http"),
		Network: cfg.Network,
		Params:  params,
	}

	var repo *clickhouse.Repository
	if cfg.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close repository", zap.Error(err))
			}
		}()
		handlerCfg.Submissions = repo
	}

	if cfg.RPCURL != "" {
		conn, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return fmt.Errorf("init rpc client: %w", err)
		}
		defer func() {
			conn.Shutdown()
			conn.WaitForShutdown()
		}()
		client, err := mvsrpc.NewClient(conn, metrics.NewRPCClient(cfg.Network))
		if err != nil {
			return err
		}
		var submissions service.SubmissionRepository
		if repo != nil {
			submissions = repo
		}
		probe, err := service.NewProbeService(client, submissions, metrics.NewProbe(cfg.Network), cfg.Network, logger.Named("probe"))
		if err != nil {
			return err
		}
		probe.Start(ctx)
		defer probe.Stop()
		handlerCfg.Probe = probe
	}

	handler, err := transport.NewHandler(handlerCfg)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	handler.Routes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
