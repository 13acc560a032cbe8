package entity

import (
	"time"

	"github.com/google/uuid"
)

// License represents a tenant's document-processing quota.
type License struct {
	ID                 uuid.UUID `json:"id"`
	TenantID           uuid.UUID `json:"tenant_id"`
	RemainingDocuments int       `json:"remaining_documents"`
	TotalDocuments     int       `json:"total_documents"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// LicenseUsage is one audit row recording quota units consumed for a document.
type LicenseUsage struct {
	ID         uuid.UUID `json:"id"`
	LicenseID  uuid.UUID `json:"license_id"`
	DocumentID uuid.UUID `json:"document_id"`
	Units      int       `json:"units"`
	ConsumedAt time.Time `json:"consumed_at"`
}
