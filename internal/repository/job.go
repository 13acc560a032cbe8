package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	"github.com/docflowhq/docflow/internal/entity"
)

// EnqueueJobRequest wraps parameters for creating one extraction job row.
type EnqueueJobRequest struct {
	DocumentID  uuid.UUID
	JobType     string
	Payload     json.RawMessage
	Priority    int
	SubmittedBy uuid.UUID
	TenantID    uuid.UUID
}

type JobRepository interface {
	// Enqueue durably creates one job row. The row is write-once: the
	// external extraction worker owns it after this call.
	Enqueue(ctx context.Context, req *EnqueueJobRequest) (*entity.ExtractionJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Enqueue(ctx context.Context, req *EnqueueJobRequest) (*entity.ExtractionJob, error) {
	row, err := r.client.ExtractionJob.Create().
		SetDocumentID(req.DocumentID).
		SetJobType(req.JobType).
		SetPayload(req.Payload).
		SetPriority(req.Priority).
		SetSubmittedBy(req.SubmittedBy).
		SetTenantID(req.TenantID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to enqueue extraction job", "document_id", req.DocumentID, "error", err)
		return nil, err
	}
	r.logger.Info("extraction job enqueued", "job_id", row.ID, "document_id", req.DocumentID, "job_type", req.JobType)
	return toJob(row), nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error) {
	row, err := r.client.ExtractionJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJob(row), nil
}
