package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/docflowhq/docflow/internal/automation"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/dispatch"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/quota"
	"github.com/docflowhq/docflow/internal/registry"
	"github.com/docflowhq/docflow/internal/repository"
)

// FileInput is one raw capture handed to the pipeline.
type FileInput struct {
	Filename string
	Data     []byte
	Metadata map[string]string // known metadata for naming-template substitution
}

// FileResult is the per-file submission outcome.
type FileResult struct {
	Filename   string
	DocumentID uuid.UUID
	JobID      uuid.UUID
	Err        string
}

// BatchStats summarizes a multi-file submission.
type BatchStats struct {
	Submitted uint32
	Succeeded uint32
	Failed    uint32
}

// Pipeline runs the per-file sequence normalize → gate → register →
// dispatch, plus the interactive wait and the batch fan-out around it.
type Pipeline struct {
	normalizer  *capture.Normalizer
	gate        *quota.Gate
	registrar   *registry.Registrar
	dispatcher  *dispatch.Dispatcher
	waiter      *Waiter
	coordinator *automation.Coordinator
	projects    repository.ProjectRepository
	batches     repository.BatchRepository
	maxParallel int
	logger      *slog.Logger
}

func New(
	normalizer *capture.Normalizer,
	gate *quota.Gate,
	registrar *registry.Registrar,
	dispatcher *dispatch.Dispatcher,
	waiter *Waiter,
	coordinator *automation.Coordinator,
	projects repository.ProjectRepository,
	batches repository.BatchRepository,
	maxParallel int,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if maxParallel <= 0 {
		maxParallel = 4
	}
	return &Pipeline{
		normalizer:  normalizer,
		gate:        gate,
		registrar:   registrar,
		dispatcher:  dispatcher,
		waiter:      waiter,
		coordinator: coordinator,
		projects:    projects,
		batches:     batches,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// SubmitFile pushes one capture through the pipeline. The quota check runs
// before any persistent write; quota consumption runs after the document row
// exists, and its failure degrades only the ledger. A dispatch failure
// leaves the document PENDING for manual resubmission.
func (p *Pipeline) SubmitFile(ctx context.Context, projectID, batchID, uploadedBy uuid.UUID, in FileInput) (*FileResult, error) {
	project, err := p.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, common.WrapError(err, "load project")
	}
	return p.submitOne(ctx, project, batchID, uploadedBy, in)
}

func (p *Pipeline) submitOne(ctx context.Context, project *entity.Project, batchID, uploadedBy uuid.UUID, in FileInput) (*FileResult, error) {
	payload, err := p.normalizer.Normalize(ctx, in.Filename, in.Data)
	if err != nil {
		return nil, err
	}

	ok, err := p.gate.HasCapacity(ctx, project.TenantID, 1)
	if err != nil {
		return nil, common.WrapError(err, "quota check")
	}
	if !ok {
		return nil, common.QuotaExceededError(project.TenantID.String())
	}

	doc, err := p.registrar.Register(ctx, &registry.RegisterRequest{
		Project:    project,
		BatchID:    batchID,
		UploadedBy: uploadedBy,
		Payload:    payload,
		Raw:        in.Data,
		Metadata:   in.Metadata,
	})
	if err != nil {
		return nil, err
	}

	if err := p.gate.Consume(ctx, project.TenantID, doc.ID, 1); err != nil {
		// The document exists; only the quota ledger is degraded.
		p.logger.Warn("quota not consumed for registered document", "document_id", doc.ID, "error", err)
	}

	job, err := p.dispatcher.Dispatch(ctx, project, doc, payload)
	if err != nil {
		return &FileResult{Filename: in.Filename, DocumentID: doc.ID, Err: err.Error()}, err
	}

	return &FileResult{Filename: in.Filename, DocumentID: doc.ID, JobID: job.ID}, nil
}

// SubmitAndWait is the interactive flow: submit one file, then poll its
// document until extraction completes or the wait bound is hit.
func (p *Pipeline) SubmitAndWait(ctx context.Context, projectID, batchID, uploadedBy uuid.UUID, in FileInput) (*FileResult, *WaitResult, error) {
	res, err := p.SubmitFile(ctx, projectID, batchID, uploadedBy, in)
	if err != nil {
		return res, nil, err
	}
	wait, err := p.waiter.Wait(ctx, res.DocumentID)
	if err != nil {
		return res, nil, err
	}
	return res, wait, nil
}

// SubmitBatch fans the per-file pipelines out under one bounded limit,
// tallies per-file outcomes, and hands the batch to the automation
// coordinator. A failed file never stops the remaining files.
func (p *Pipeline) SubmitBatch(ctx context.Context, projectID, batchID, uploadedBy uuid.UUID, files []FileInput) ([]FileResult, BatchStats, error) {
	project, err := p.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, BatchStats{}, common.WrapError(err, "load project")
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxParallel)
	for i, in := range files {
		g.Go(func() error {
			res, err := p.submitOne(gctx, project, batchID, uploadedBy, in)
			if err != nil {
				p.logger.Error("file submission failed", "filename", in.Filename, "batch_id", batchID, "error", err)
				results[i] = FileResult{Filename: in.Filename, Err: err.Error()}
				if res != nil {
					results[i].DocumentID = res.DocumentID
				}
				if berr := p.batches.IncrementErrorCount(gctx, batchID); berr != nil {
					p.logger.Error("batch error count not incremented", "batch_id", batchID, "error", berr)
				}
				return nil // keep processing the remaining files
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	var stats BatchStats
	stats.Submitted = uint32(len(files))
	for _, r := range results {
		if r.Err == "" {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
	p.logger.Info("batch submission finished",
		"batch_id", batchID,
		"submitted", stats.Submitted,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)

	if p.coordinator != nil {
		// Detached: automation outcomes never feed back into this tally.
		go p.coordinator.Run(context.WithoutCancel(ctx), batchID, int(stats.Succeeded))
	}
	return results, stats, nil
}
