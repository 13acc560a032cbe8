package entity

import (
	"time"

	"github.com/google/uuid"
)

// Batch represents a batch of documents for data transfer between layers.
type Batch struct {
	ID                 uuid.UUID `json:"id"`
	ProjectID          uuid.UUID `json:"project_id"`
	Name               string    `json:"name"`
	TotalDocuments     int       `json:"total_documents"`
	ProcessedDocuments int       `json:"processed_documents"`
	ValidatedDocuments int       `json:"validated_documents"`
	ErrorCount         int       `json:"error_count"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
