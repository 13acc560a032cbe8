package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionJob represents one queued extraction work item.
// Jobs are write-once from the pipeline's perspective.
type ExtractionJob struct {
	ID          uuid.UUID       `json:"id"`
	JobType     string          `json:"job_type"`
	Payload     json.RawMessage `json:"payload"`
	Priority    int             `json:"priority"`
	SubmittedBy uuid.UUID       `json:"submitted_by"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// JobPayload is the serialized body of an ExtractionJob.
type JobPayload struct {
	DocumentID            uuid.UUID       `json:"document_id"`
	Content               string          `json:"content,omitempty"`     // extracted text, when available
	ImageData             []byte          `json:"image_data,omitempty"`  // inline image bytes, when no storage ref
	StorageRef            string          `json:"storage_ref,omitempty"` // durable reference, preferred over inline data
	IsPDF                 bool            `json:"is_pdf"`
	ExtractionFields      json.RawMessage `json:"extraction_fields,omitempty"`
	TableExtractionFields json.RawMessage `json:"table_extraction_fields,omitempty"`
	CheckScanningMode     bool            `json:"check_scanning_mode"`
}
