package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// Dispatcher enqueues exactly one extraction job per registered document.
// Dispatch success means the job is durably queued, not that extraction has
// run; the worker writes results back asynchronously.
type Dispatcher struct {
	jobs   repository.JobRepository
	logger *slog.Logger
}

func NewDispatcher(jobs repository.JobRepository, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{jobs: jobs, logger: logger}
}

// Dispatch is fire-and-forget. On enqueue failure the document stays
// PENDING with no rollback; a manual resubmission can still complete it.
func (d *Dispatcher) Dispatch(ctx context.Context, project *entity.Project, doc *entity.Document, payload *capture.Payload) (*entity.ExtractionJob, error) {
	jp := entity.JobPayload{
		DocumentID:            doc.ID,
		Content:               payload.Text,
		StorageRef:            doc.StorageRef,
		IsPDF:                 payload.IsPDF,
		ExtractionFields:      project.ExtractionFields,
		TableExtractionFields: project.TableExtractionFields,
		CheckScanningMode:     project.CheckScanningMode,
	}
	// Inline image bytes ride on the job only when no durable ref exists.
	if doc.StorageRef == "" && !payload.IsPDF {
		jp.ImageData = payload.ImageData
	}

	body, err := json.Marshal(jp)
	if err != nil {
		return nil, common.JobDispatchError(doc.ID.String(), err)
	}

	job, err := d.jobs.Enqueue(ctx, &repository.EnqueueJobRequest{
		DocumentID:  doc.ID,
		JobType:     constants.JobTypeExtractDocument,
		Payload:     body,
		SubmittedBy: doc.UploadedBy,
		TenantID:    project.TenantID,
	})
	if err != nil {
		return nil, common.JobDispatchError(doc.ID.String(), err)
	}

	d.logger.Info("extraction job dispatched", "job_id", job.ID, "document_id", doc.ID, "is_pdf", payload.IsPDF)
	return job, nil
}
