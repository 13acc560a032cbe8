package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/storage"
)

// RegisterRequest carries one normalized capture plus its context.
type RegisterRequest struct {
	Project    *entity.Project
	BatchID    uuid.UUID
	UploadedBy uuid.UUID
	Payload    *capture.Payload
	Raw        []byte            // original capture bytes, stored for PDFs whose job payload is text
	Metadata   map[string]string // known metadata for naming-template substitution
}

// Registrar persists the initial document record. Inline payloads are
// uploaded to durable storage first; document rows never carry inline bytes
// when an object store is configured.
type Registrar struct {
	documents repository.DocumentRepository
	batches   repository.BatchRepository
	store     storage.ObjectStore
	logger    *slog.Logger
}

func NewRegistrar(documents repository.DocumentRepository, batches repository.BatchRepository, store storage.ObjectStore, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{documents: documents, batches: batches, store: store, logger: logger}
}

// Register uploads the payload, writes the document row, and bumps the
// batch's total and processed counters. Counters move only when the whole
// registration succeeded.
func (r *Registrar) Register(ctx context.Context, req *RegisterRequest) (*entity.Document, error) {
	storageRef, err := r.upload(ctx, req)
	if err != nil {
		return nil, common.UploadError(req.Payload.Filename, err)
	}

	filename := req.Payload.Filename
	if named, ok := ApplyNamingTemplate(req.Project.FileNamingTemplate, req.Metadata, filename); ok {
		filename = named
	}

	fileType := constants.IMAGE
	if req.Payload.IsPDF {
		fileType = constants.PDF
	}

	doc, err := r.documents.Create(ctx, &repository.CreateDocumentRequest{
		ProjectID:  req.Project.ID,
		BatchID:    req.BatchID,
		Filename:   filename,
		FileType:   fileType,
		StorageRef: storageRef,
		UploadedBy: req.UploadedBy,
	})
	if err != nil {
		return nil, common.RegistrationError(req.Payload.Filename, err)
	}

	if err := r.batches.IncrementCounters(ctx, req.BatchID, 1, 1); err != nil {
		// The document exists; the counters are now behind by one. Surfaced
		// in logs rather than failing a successful registration.
		r.logger.Error("batch counters not incremented", "batch_id", req.BatchID, "document_id", doc.ID, "error", err)
	}

	r.logger.Info("document registered",
		"document_id", doc.ID,
		"batch_id", req.BatchID,
		"filename", filename,
		"file_type", fileType,
		"method", req.Payload.Method,
	)
	return doc, nil
}

// upload picks the bytes that represent the document and stores them.
// Text-path PDFs store the original capture; image payloads store the
// normalized image. Without a store the payload stays inline on the job.
func (r *Registrar) upload(ctx context.Context, req *RegisterRequest) (string, error) {
	if r.store == nil {
		return "", nil
	}
	data := req.Payload.ImageData
	contentType := req.Payload.ContentType
	if req.Payload.IsPDF {
		data = req.Raw
		contentType = "application/pdf"
	}
	if len(data) == 0 {
		return "", nil
	}
	ref, err := r.store.Put(ctx, data, contentType)
	if err != nil {
		return "", err
	}
	return ref, nil
}
