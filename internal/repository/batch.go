package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entbatch "github.com/docflowhq/docflow/gen/ent/batch"
	"github.com/docflowhq/docflow/internal/entity"
)

type BatchRepository interface {
	Create(ctx context.Context, projectID uuid.UUID, name string) (*entity.Batch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
	// IncrementCounters atomically bumps total and processed. Counters are
	// never decremented, including on document deletion.
	IncrementCounters(ctx context.Context, id uuid.UUID, total, processed int) error
	IncrementErrorCount(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

type batchRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(client *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepository{
		client: client,
		logger: logger,
	}
}

func (r *batchRepository) Create(ctx context.Context, projectID uuid.UUID, name string) (*entity.Batch, error) {
	row, err := r.client.Batch.Create().
		SetProjectID(projectID).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create batch", "project_id", projectID, "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("batch created", "batch_id", row.ID, "project_id", projectID, "name", name)
	return toBatch(row), nil
}

func (r *batchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	row, err := r.client.Batch.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBatch(row), nil
}

func (r *batchRepository) IncrementCounters(ctx context.Context, id uuid.UUID, total, processed int) error {
	_, err := r.client.Batch.UpdateOneID(id).
		AddTotalDocuments(total).
		AddProcessedDocuments(processed).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to increment batch counters", "batch_id", id, "error", err)
		return err
	}
	return nil
}

func (r *batchRepository) IncrementErrorCount(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Batch.UpdateOneID(id).
		AddErrorCount(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to increment batch error count", "batch_id", id, "error", err)
		return err
	}
	return nil
}

func (r *batchRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.client.Batch.Update().
		Where(entbatch.ID(id)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set batch status", "batch_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("batch status updated", "batch_id", id, "status", status)
	return nil
}
