package utils

import (
	"time"

	docflowv1 "github.com/docflowhq/docflow/gen/proto/docflow/v1"
	"github.com/docflowhq/docflow/internal/entity"
)

func jsonOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	return string(raw)
}

func ToPBProject(p *entity.Project) *docflowv1.Project {
	return &docflowv1.Project{
		Id:                    p.ID.String(),
		TenantId:              p.TenantID.String(),
		Name:                  p.Name,
		FileNamingTemplate:    p.FileNamingTemplate,
		ExtractionFields:      jsonOrEmpty(p.ExtractionFields),
		TableExtractionFields: jsonOrEmpty(p.TableExtractionFields),
		CheckScanningMode:     p.CheckScanningMode,
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBatch(b *entity.Batch) *docflowv1.Batch {
	return &docflowv1.Batch{
		Id:                 b.ID.String(),
		ProjectId:          b.ProjectID.String(),
		Name:               b.Name,
		TotalDocuments:     int32(b.TotalDocuments),
		ProcessedDocuments: int32(b.ProcessedDocuments),
		ValidatedDocuments: int32(b.ValidatedDocuments),
		ErrorCount:         int32(b.ErrorCount),
		Status:             b.Status,
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.Document) *docflowv1.Document {
	return &docflowv1.Document{
		Id:                d.ID.String(),
		ProjectId:         d.ProjectID.String(),
		BatchId:           d.BatchID.String(),
		Filename:          d.Filename,
		FileType:          d.FileType,
		StorageRef:        d.StorageRef,
		ExtractedText:     d.ExtractedText,
		ExtractedMetadata: d.ExtractedMetadata,
		LineItems:         jsonOrEmpty(d.LineItems),
		WordBoxes:         jsonOrEmpty(d.WordBoxes),
		ValidationStatus:  d.ValidationStatus,
		Confidence:        d.Confidence,
		UploadedBy:        d.UploadedBy.String(),
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
