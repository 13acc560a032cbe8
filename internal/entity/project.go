package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project represents a project for data transfer between layers.
type Project struct {
	ID                    uuid.UUID       `json:"id"`
	TenantID              uuid.UUID       `json:"tenant_id"`
	Name                  string          `json:"name"`
	FileNamingTemplate    string          `json:"file_naming_template,omitempty"`
	ExtractionFields      json.RawMessage `json:"extraction_fields,omitempty"`
	TableExtractionFields json.RawMessage `json:"table_extraction_fields,omitempty"`
	CheckScanningMode     bool            `json:"check_scanning_mode"`
	CreatedAt             time.Time       `json:"created_at"`
}
