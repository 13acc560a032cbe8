package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents a captured document for data transfer between layers.
type Document struct {
	ID                uuid.UUID         `json:"id"`
	ProjectID         uuid.UUID         `json:"project_id"`
	BatchID           uuid.UUID         `json:"batch_id"`
	Filename          string            `json:"filename"`
	FileType          string            `json:"file_type"` // PDF | IMAGE
	StorageRef        string            `json:"storage_ref"`
	ExtractedText     string            `json:"extracted_text"`
	ExtractedMetadata map[string]string `json:"extracted_metadata,omitempty"`
	LineItems         json.RawMessage   `json:"line_items,omitempty"`
	WordBoxes         json.RawMessage   `json:"word_boxes,omitempty"`
	ValidationStatus  string            `json:"validation_status"`
	Confidence        *float32          `json:"confidence,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UploadedBy        uuid.UUID         `json:"uploaded_by"`
}

// LineItem is one repeating row record extracted from a document table.
type LineItem struct {
	Fields map[string]string `json:"fields"`
}
