package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	"github.com/docflowhq/docflow/internal/automation"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/dispatch"
	"github.com/docflowhq/docflow/internal/dupes"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/quota"
	"github.com/docflowhq/docflow/internal/registry"
	repo "github.com/docflowhq/docflow/internal/repository"
	storagelocal "github.com/docflowhq/docflow/internal/storage/local"
)

// submit pushes files through the capture pipeline straight against the
// database, without going through the gRPC daemon. Useful for backfills and
// local testing against the embedded sqlite mode.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		projectArg  = flag.String("project", "", "project id (UUID)")
		batchArg    = flag.String("batch", "", "batch id (UUID); created on the fly when empty")
		uploaderArg = flag.String("uploader", "", "uploading user id (UUID)")
		wait        = flag.Bool("wait", false, "poll for extraction completion (single file only)")
	)
	flag.Parse()

	if *projectArg == "" || *uploaderArg == "" || flag.NArg() == 0 {
		logger.Error("usage", "cmd", "submit -project <uuid> -uploader <uuid> [-batch <uuid>] [-wait] <file> [file...]")
		os.Exit(2)
	}
	projectID, err := uuid.Parse(*projectArg)
	if err != nil {
		logger.Error("invalid project id (must be UUID)", "arg", *projectArg, "error", err)
		os.Exit(2)
	}
	uploadedBy, err := uuid.Parse(*uploaderArg)
	if err != nil {
		logger.Error("invalid uploader id (must be UUID)", "arg", *uploaderArg, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	if pool != nil {
		defer pool.Close()
	}

	store, err := storagelocal.New(cfg.Storage.LocalDir)
	if err != nil {
		logger.Error("open object store", "dir", cfg.Storage.LocalDir, "error", err)
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

	coordinator := automation.NewCoordinator(
		documentsRepo, batchesRepo, nil, dupes.NewDetector(documentsRepo, logger),
		cfg.Automation, logger,
	)
	pipe := pipeline.New(
		normalizer,
		quota.NewGate(licensesRepo, logger),
		registry.NewRegistrar(documentsRepo, batchesRepo, store, logger),
		dispatch.NewDispatcher(jobsRepo, logger),
		pipeline.NewWaiter(documentsRepo, cfg.Poll, logger),
		coordinator,
		projectsRepo, batchesRepo,
		cfg.Automation.MaxSubmitParallel, logger,
	)

	batchID, err := resolveBatch(ctx, batchesRepo, projectID, *batchArg)
	if err != nil {
		logger.Error("resolve batch", "error", err)
		os.Exit(1)
	}

	files := make([]pipeline.FileInput, 0, flag.NArg())
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read file", "path", path, "error", err)
			os.Exit(1)
		}
		files = append(files, pipeline.FileInput{Filename: filepath.Base(path), Data: data})
	}

	start := time.Now()
	if len(files) == 1 && *wait {
		res, waitRes, err := pipe.SubmitAndWait(ctx, projectID, batchID, uploadedBy, files[0])
		if err != nil {
			logger.Error("submission failed", "filename", files[0].Filename, "error", err, "duration_ms", time.Since(start).Milliseconds())
			os.Exit(1)
		}
		logger.Info("submission OK",
			"document_id", res.DocumentID,
			"job_id", res.JobID,
			"text_bytes", len(waitRes.Text),
			"attempts", waitRes.Attempts,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return
	}

	results, stats, err := pipe.SubmitBatch(ctx, projectID, batchID, uploadedBy, files)
	if err != nil {
		logger.Error("batch submission failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file failed", "filename", r.Filename, "error", r.Err)
		}
	}
	logger.Info("batch submission OK",
		"batch_id", batchID,
		"submitted", stats.Submitted,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func resolveBatch(ctx context.Context, batches repo.BatchRepository, projectID uuid.UUID, arg string) (uuid.UUID, error) {
	if arg != "" {
		return uuid.Parse(arg)
	}
	b, err := batches.Create(ctx, projectID, "submit-"+time.Now().UTC().Format("20060102-150405"))
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID, nil
}
