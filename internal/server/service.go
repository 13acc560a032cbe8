package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docflowv1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/fields"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/utils"
)

// CaptureService is the gRPC surface over the submission pipeline.
type CaptureService struct {
	docflowv1.UnimplementedCaptureServiceServer
	pipeline  *pipeline.Pipeline
	projects  repository.ProjectRepository
	batches   repository.BatchRepository
	documents repository.DocumentRepository
	logger    *zap.Logger
}

func NewCaptureService(
	p *pipeline.Pipeline,
	projects repository.ProjectRepository,
	batches repository.BatchRepository,
	documents repository.DocumentRepository,
	logger *zap.Logger,
) *CaptureService {
	return &CaptureService{
		pipeline:  p,
		projects:  projects,
		batches:   batches,
		documents: documents,
		logger:    logger,
	}
}

func (s *CaptureService) CreateProject(ctx context.Context, req *docflowv1.CreateProjectRequest) (*docflowv1.CreateProjectResponse, error) {
	tenantID, err := uuid.Parse(req.GetTenantId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "tenant_id must be a UUID")
	}
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	extractionFields, err := parseFieldList(req.GetExtractionFields())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "extraction_fields: %v", err)
	}
	tableFields, err := parseFieldList(req.GetTableExtractionFields())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "table_extraction_fields: %v", err)
	}

	p, err := s.projects.Create(ctx, &entity.Project{
		TenantID:              tenantID,
		Name:                  req.GetName(),
		FileNamingTemplate:    req.GetFileNamingTemplate(),
		ExtractionFields:      extractionFields,
		TableExtractionFields: tableFields,
		CheckScanningMode:     req.GetCheckScanningMode(),
	})
	if err != nil {
		s.logger.Warn("create project failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "create project failed")
	}
	return &docflowv1.CreateProjectResponse{Project: utils.ToPBProject(p)}, nil
}

func (s *CaptureService) CreateBatch(ctx context.Context, req *docflowv1.CreateBatchRequest) (*docflowv1.CreateBatchResponse, error) {
	projectID, err := uuid.Parse(req.GetProjectId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "project_id must be a UUID")
	}
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		s.logger.Warn("project lookup failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "project lookup failed")
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "project not found")
	}

	b, err := s.batches.Create(ctx, projectID, req.GetName())
	if err != nil {
		s.logger.Warn("create batch failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "create batch failed")
	}
	return &docflowv1.CreateBatchResponse{Batch: utils.ToPBBatch(b)}, nil
}

func (s *CaptureService) SubmitCapture(ctx context.Context, req *docflowv1.SubmitCaptureRequest) (*docflowv1.SubmitCaptureResponse, error) {
	ids, err := parseSubmissionIDs(req.GetProjectId(), req.GetBatchId(), req.GetUploadedBy())
	if err != nil {
		return nil, err
	}
	file := req.GetFile()
	if file == nil || len(file.GetData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "file with data is required")
	}

	in := pipeline.FileInput{
		Filename: file.GetFilename(),
		Data:     file.GetData(),
		Metadata: file.GetMetadata(),
	}

	if !req.GetWait() {
		res, err := s.pipeline.SubmitFile(ctx, ids.project, ids.batch, ids.uploadedBy, in)
		if err != nil {
			s.logger.Warn("capture submission failed", zap.String("filename", in.Filename), zap.Error(err))
			return nil, common.ToStatus(err)
		}
		return &docflowv1.SubmitCaptureResponse{
			DocumentId: res.DocumentID.String(),
			JobId:      res.JobID.String(),
		}, nil
	}

	res, wait, err := s.pipeline.SubmitAndWait(ctx, ids.project, ids.batch, ids.uploadedBy, in)
	if err != nil {
		s.logger.Warn("interactive capture failed", zap.String("filename", in.Filename), zap.Error(err))
		return nil, common.ToStatus(err)
	}
	return &docflowv1.SubmitCaptureResponse{
		DocumentId: res.DocumentID.String(),
		JobId:      res.JobID.String(),
		Extraction: &docflowv1.ExtractionResult{
			Text:       wait.Text,
			Metadata:   wait.Metadata,
			LineItems:  string(wait.LineItems),
			WordBoxes:  string(wait.WordBoxes),
			Confidence: wait.Confidence,
			Attempts:   int32(wait.Attempts),
		},
	}, nil
}

func (s *CaptureService) SubmitBatch(ctx context.Context, req *docflowv1.SubmitBatchRequest) (*docflowv1.SubmitBatchResponse, error) {
	ids, err := parseSubmissionIDs(req.GetProjectId(), req.GetBatchId(), req.GetUploadedBy())
	if err != nil {
		return nil, err
	}
	if len(req.GetFiles()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	files := make([]pipeline.FileInput, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		if len(f.GetData()) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "file %q has no data", f.GetFilename())
		}
		files = append(files, pipeline.FileInput{
			Filename: f.GetFilename(),
			Data:     f.GetData(),
			Metadata: f.GetMetadata(),
		})
	}

	results, stats, err := s.pipeline.SubmitBatch(ctx, ids.project, ids.batch, ids.uploadedBy, files)
	if err != nil {
		s.logger.Warn("batch submission failed", zap.Error(err))
		return nil, common.ToStatus(err)
	}

	outcomes := make([]*docflowv1.FileOutcome, 0, len(results))
	for _, r := range results {
		out := &docflowv1.FileOutcome{Filename: r.Filename, Error: r.Err}
		if r.DocumentID != uuid.Nil {
			out.DocumentId = r.DocumentID.String()
		}
		if r.JobID != uuid.Nil {
			out.JobId = r.JobID.String()
		}
		outcomes = append(outcomes, out)
	}
	return &docflowv1.SubmitBatchResponse{
		Outcomes: outcomes,
		Stats: &docflowv1.BatchStats{
			Submitted: stats.Submitted,
			Succeeded: stats.Succeeded,
			Failed:    stats.Failed,
		},
	}, nil
}

func (s *CaptureService) GetDocument(ctx context.Context, req *docflowv1.GetDocumentRequest) (*docflowv1.GetDocumentResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	return &docflowv1.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *CaptureService) GetBatch(ctx context.Context, req *docflowv1.GetBatchRequest) (*docflowv1.GetBatchResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	b, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "batch not found")
	}
	return &docflowv1.GetBatchResponse{Batch: utils.ToPBBatch(b)}, nil
}

type submissionIDs struct {
	project    uuid.UUID
	batch      uuid.UUID
	uploadedBy uuid.UUID
}

func parseSubmissionIDs(project, batch, uploadedBy string) (submissionIDs, error) {
	var ids submissionIDs
	var err error
	if ids.project, err = uuid.Parse(project); err != nil {
		return ids, status.Error(codes.InvalidArgument, "project_id must be a UUID")
	}
	if ids.batch, err = uuid.Parse(batch); err != nil {
		return ids, status.Error(codes.InvalidArgument, "batch_id must be a UUID")
	}
	if ids.uploadedBy, err = uuid.Parse(uploadedBy); err != nil {
		return ids, status.Error(codes.InvalidArgument, "uploaded_by must be a UUID")
	}
	return ids, nil
}

// parseFieldList validates a user-supplied JSON field list and returns it in
// canonical form. Empty input stays empty.
func parseFieldList(raw string) (json.RawMessage, error) {
	if raw == "" {
		return nil, nil
	}
	if _, err := fields.ParseFields(json.RawMessage(raw)); err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
