package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entdoc "github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering a document.
type CreateDocumentRequest struct {
	ProjectID  uuid.UUID
	BatchID    uuid.UUID
	Filename   string
	FileType   string // PDF | IMAGE
	StorageRef string
	UploadedBy uuid.UUID
}

// ExtractionResult is the payload the extraction worker writes back onto a
// document once it finishes.
type ExtractionResult struct {
	Text       string
	Metadata   map[string]string
	LineItems  json.RawMessage
	WordBoxes  json.RawMessage
	Confidence float32
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Document, error)
	ListByBatchAndStatus(ctx context.Context, batchID uuid.UUID, status string) ([]*entity.Document, error)
	CountByBatch(ctx context.Context, batchID uuid.UUID) (int, error)
	SetExtractionResult(ctx context.Context, id uuid.UUID, res *ExtractionResult) error
	SetValidationStatus(ctx context.Context, id uuid.UUID, status string) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

// Create persists the initial document row. Extracted text is always empty
// at this point; the job referencing the document correlates back to the id
// returned here.
func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetProjectID(req.ProjectID).
		SetBatchID(req.BatchID).
		SetFilename(req.Filename).
		SetFileType(req.FileType).
		SetStorageRef(req.StorageRef).
		SetUploadedBy(req.UploadedBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "project_id", req.ProjectID, "batch_id", req.BatchID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(entdoc.BatchID(batchID)).
		Order(entdoc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by batch", "batch_id", batchID, "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepository) ListByBatchAndStatus(ctx context.Context, batchID uuid.UUID, status string) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(
			entdoc.BatchID(batchID),
			entdoc.ValidationStatus(status),
		).
		Order(entdoc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by batch and status", "batch_id", batchID, "status", status, "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepository) CountByBatch(ctx context.Context, batchID uuid.UUID) (int, error) {
	n, err := r.client.Document.Query().
		Where(entdoc.BatchID(batchID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count documents by batch", "batch_id", batchID, "error", err)
		return 0, err
	}
	return n, nil
}

// SetExtractionResult is the worker-side write-back. Validation status stays
// PENDING; a non-empty extracted_text is the completion signal.
func (r *documentRepository) SetExtractionResult(ctx context.Context, id uuid.UUID, res *ExtractionResult) error {
	upd := r.client.Document.UpdateOneID(id).
		SetExtractedText(res.Text).
		SetConfidence(res.Confidence)
	if res.Metadata != nil {
		upd = upd.SetExtractedMetadata(res.Metadata)
	}
	if res.LineItems != nil {
		upd = upd.SetLineItems(res.LineItems)
	}
	if res.WordBoxes != nil {
		upd = upd.SetWordBoxes(res.WordBoxes)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to set extraction result", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) SetValidationStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetValidationStatus(status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set validation status", "document_id", id, "status", status, "error", err)
		return err
	}
	return nil
}
