package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/discovery"
	"github.com/marketlens/marketlens/internal/export"
	"github.com/marketlens/marketlens/internal/fetch"
	"github.com/marketlens/marketlens/internal/generator"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/llm/openai"
	"github.com/marketlens/marketlens/internal/master"
	"github.com/marketlens/marketlens/internal/repository"
	"github.com/marketlens/marketlens/internal/review"
	"github.com/marketlens/marketlens/internal/scan"
	"github.com/marketlens/marketlens/internal/scheduler"
	"github.com/marketlens/marketlens/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "err", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "err", err)
		os.Exit(1)
	}

	targets := repository.NewTargetRepository(entc, logger)
	scans := repository.NewScanRepository(entc, logger)
	proposals := repository.NewProposalRepository(entc, logger)

	chat := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	extractor := llm.NewFieldExtractor(chat, logger)
	renderer := fetch.NewChromeRenderer(fetch.Config{
		Timeout:    cfg.Render.Timeout,
		TextBudget: cfg.Render.TextBudget,
		ExecPath:   cfg.Render.ExecPath,
	}, logger)

	pipeline := scan.NewPipeline(targets, scans, renderer, extractor, logger)
	batch := scheduler.New(targets, scans, pipeline, cfg.Scheduler.Concurrency, logger)
	reconciler := master.NewReconciler(targets, logger)
	reviewSvc := review.NewService(targets, scans, reconciler, logger)
	discoverySvc := discovery.NewService(chat, proposals, targets, logger)
	generatorSvc := generator.NewService(chat, targets, scans, logger)
	exportSvc := export.NewService(targets, scans, logger)

	go batch.Start(ctx, cfg.Scheduler.TickInterval)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewTrackerService(targets, scans, pipeline, batch,
		reviewSvc, discoverySvc, generatorSvc, exportSvc, logger)
	marketlensv1.RegisterTrackerServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "err", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
