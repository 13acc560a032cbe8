package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docflowv1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/automation"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/dispatch"
	"github.com/docflowhq/docflow/internal/dupes"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/quota"
	"github.com/docflowhq/docflow/internal/registry"
	repo "github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/server"
	"github.com/docflowhq/docflow/internal/storage"
	storagelocal "github.com/docflowhq/docflow/internal/storage/local"
	storages3 "github.com/docflowhq/docflow/internal/storage/s3"
)

func main() {
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	store, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open object store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	projectsRepo := repo.NewProjectRepository(entc, logger)
	batchesRepo := repo.NewBatchRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	licensesRepo := repo.NewLicenseRepository(entc, logger)

	normalizer := capture.NewNormalizer(capture.Config{
		MinCompressBytes: cfg.Capture.MinCompressBytes,
		MaxPixelDim:      cfg.Capture.MaxPixelDim,
		TargetImageBytes: cfg.Capture.TargetImageBytes,
		MaxTextPages:     cfg.Capture.MaxTextPages,
		MinTextChars:     cfg.Capture.MinTextChars,
		RasterScale:      cfg.Capture.RasterScale,
	}, capture.NewPDFTextReader(), capture.NewFitzRasterizer(), logger)

	gate := quota.NewGate(licensesRepo, logger)
	registrar := registry.NewRegistrar(documentsRepo, batchesRepo, store, logger)
	dispatcher := dispatch.NewDispatcher(jobsRepo, logger)
	waiter := pipeline.NewWaiter(documentsRepo, cfg.Poll, logger)

	// With no extraction tier configured, batch extraction is left to the
	// queue consumers and duplicate detection runs locally.
	var trigger extract.BatchTrigger
	var detector extract.DuplicateDetector
	if cfg.Extraction.BaseURL != "" {
		client := extract.NewClient(cfg.Extraction.BaseURL, cfg.Extraction.Timeout, logger)
		trigger = client
		detector = client
	} else {
		detector = dupes.NewDetector(documentsRepo, logger)
	}
	coordinator := automation.NewCoordinator(documentsRepo, batchesRepo, trigger, detector, cfg.Automation, logger)

	pipe := pipeline.New(
		normalizer, gate, registrar, dispatcher, waiter, coordinator,
		projectsRepo, batchesRepo, cfg.Automation.MaxSubmitParallel, logger,
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	captureService := server.NewCaptureService(pipe, projectsRepo, batchesRepo, documentsRepo, zlog)
	docflowv1.RegisterCaptureServiceServer(grpcServer, captureService)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docflowd listening", "addr", cfg.Server.GRPCAddr, "storage", cfg.Storage.Backend)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

func openStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (storage.ObjectStore, error) {
	switch cfg.Backend {
	case "s3":
		logger.Info("using s3 object store", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		return storages3.New(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix)
	default:
		logger.Info("using local object store", "dir", cfg.LocalDir)
		return storagelocal.New(cfg.LocalDir)
	}
}
