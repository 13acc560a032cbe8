package automation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/repository"
)

// Coordinator runs the batch-wide follow-on after a multi-file submission:
// bounded-concurrency batch extraction, then delayed duplicate detection.
// Everything here is best-effort — failures are logged, never retried, and
// never surface in the submission's success/failure accounting.
type Coordinator struct {
	documents repository.DocumentRepository
	batches   repository.BatchRepository
	trigger   extract.BatchTrigger
	detector  extract.DuplicateDetector
	cfg       common.AutomationConfig
	logger    *slog.Logger
}

func NewCoordinator(
	documents repository.DocumentRepository,
	batches repository.BatchRepository,
	trigger extract.BatchTrigger,
	detector extract.DuplicateDetector,
	cfg common.AutomationConfig,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxExtractParallel <= 0 {
		cfg.MaxExtractParallel = 3
	}
	return &Coordinator{
		documents: documents,
		batches:   batches,
		trigger:   trigger,
		detector:  detector,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run fires once per finished multi-file submission. succeeded is the count
// of files that registered successfully.
func (c *Coordinator) Run(ctx context.Context, batchID uuid.UUID, succeeded int) {
	if succeeded < 1 {
		c.logger.Info("no successful files, skipping batch automation", "batch_id", batchID)
		return
	}

	if c.trigger != nil {
		if err := c.trigger.TriggerBatchExtraction(ctx, batchID, c.cfg.MaxExtractParallel); err != nil {
			c.logger.Error("batch extraction trigger failed",
				"batch_id", batchID,
				"error", common.AutomationTriggerError(batchID.String(), err),
			)
		} else if err := c.batches.SetStatus(ctx, batchID, string(constants.BatchStatusIndexing)); err != nil {
			c.logger.Error("batch status not advanced", "batch_id", batchID, "error", err)
		}
	}

	// The delay lets extraction make progress; it is a heuristic, not a
	// completion signal from the extraction tier.
	select {
	case <-ctx.Done():
		c.logger.Warn("batch automation cancelled before duplicate detection", "batch_id", batchID)
		return
	case <-time.After(c.cfg.DuplicateDelay):
	}

	c.detectDuplicates(ctx, batchID)
}

func (c *Coordinator) detectDuplicates(ctx context.Context, batchID uuid.UUID) {
	if c.detector == nil {
		return
	}
	docs, err := c.documents.ListByBatch(ctx, batchID)
	if err != nil {
		c.logger.Error("duplicate detection skipped, batch unreadable",
			"batch_id", batchID,
			"error", common.AutomationTriggerError(batchID.String(), err),
		)
		return
	}
	if len(docs) < 2 {
		c.logger.Info("fewer than two documents, skipping duplicate detection", "batch_id", batchID, "count", len(docs))
		return
	}

	thresholds := extract.DuplicateThresholds{
		Name:      c.cfg.NameThreshold,
		Address:   c.cfg.AddressThreshold,
		Signature: c.cfg.SignatureThreshold,
	}
	for _, doc := range docs {
		if err := c.detector.DetectDuplicates(ctx, doc.ID, batchID, false, thresholds); err != nil {
			// One document's failure never aborts the rest.
			c.logger.Error("duplicate detection failed for document",
				"batch_id", batchID,
				"document_id", doc.ID,
				"error", common.AutomationTriggerError(batchID.String(), err),
			)
		}
	}
	c.logger.Info("duplicate detection finished", "batch_id", batchID, "documents", len(docs))
}
