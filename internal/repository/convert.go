package repository

import (
	"github.com/docflowhq/docflow/gen/ent"
	"github.com/docflowhq/docflow/internal/entity"
)

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                d.ID,
		ProjectID:         d.ProjectID,
		BatchID:           d.BatchID,
		Filename:          d.Filename,
		FileType:          d.FileType,
		StorageRef:        d.StorageRef,
		ExtractedText:     d.ExtractedText,
		ExtractedMetadata: d.ExtractedMetadata,
		LineItems:         d.LineItems,
		WordBoxes:         d.WordBoxes,
		ValidationStatus:  d.ValidationStatus,
		Confidence:        d.Confidence,
		CreatedAt:         d.CreatedAt,
		UploadedBy:        d.UploadedBy,
	}
}

func toDocuments(rows []*ent.Document) []*entity.Document {
	out := make([]*entity.Document, len(rows))
	for i, d := range rows {
		out[i] = toDocument(d)
	}
	return out
}

func toBatch(b *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:                 b.ID,
		ProjectID:          b.ProjectID,
		Name:               b.Name,
		TotalDocuments:     b.TotalDocuments,
		ProcessedDocuments: b.ProcessedDocuments,
		ValidatedDocuments: b.ValidatedDocuments,
		ErrorCount:         b.ErrorCount,
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
	}
}

func toJob(j *ent.ExtractionJob) *entity.ExtractionJob {
	return &entity.ExtractionJob{
		ID:          j.ID,
		JobType:     j.JobType,
		Payload:     j.Payload,
		Priority:    j.Priority,
		SubmittedBy: j.SubmittedBy,
		TenantID:    j.TenantID,
		CreatedAt:   j.CreatedAt,
	}
}

func toLicense(l *ent.License) *entity.License {
	return &entity.License{
		ID:                 l.ID,
		TenantID:           l.TenantID,
		RemainingDocuments: l.RemainingDocuments,
		TotalDocuments:     l.TotalDocuments,
		ExpiresAt:          l.ExpiresAt,
	}
}

func toProject(p *ent.Project) *entity.Project {
	return &entity.Project{
		ID:                    p.ID,
		TenantID:              p.TenantID,
		Name:                  p.Name,
		FileNamingTemplate:    p.FileNamingTemplate,
		ExtractionFields:      p.ExtractionFields,
		TableExtractionFields: p.TableExtractionFields,
		CheckScanningMode:     p.CheckScanningMode,
		CreatedAt:             p.CreatedAt,
	}
}
