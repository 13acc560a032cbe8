package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/repository"
)

// Gate enforces per-tenant document quota around registration. HasCapacity
// runs before any document row is written; Consume runs only after the row
// is durably created. The decrement itself is a single conditional update at
// the store layer, so concurrent submissions cannot over-allocate.
type Gate struct {
	licenses repository.LicenseRepository
	logger   *slog.Logger
}

func NewGate(licenses repository.LicenseRepository, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{licenses: licenses, logger: logger}
}

// HasCapacity reports whether at least n units remain on an unexpired
// license. It is a read-only guard; the authoritative check happens inside
// Consume's conditional decrement.
func (g *Gate) HasCapacity(ctx context.Context, tenantID uuid.UUID, n int) (bool, error) {
	lic, err := g.licenses.GetByTenant(ctx, tenantID)
	if err != nil {
		return false, fmt.Errorf("load license: %w", err)
	}
	if !lic.ExpiresAt.IsZero() && lic.ExpiresAt.Before(time.Now()) {
		g.logger.Warn("license expired", "tenant_id", tenantID, "expired_at", lic.ExpiresAt)
		return false, nil
	}
	return lic.RemainingDocuments >= n, nil
}

// Consume decrements the tenant's remaining units by n, tied to documentID
// for audit. Callers treat a failure here as a degraded ledger, not as a
// failure of the already-registered document.
func (g *Gate) Consume(ctx context.Context, tenantID, documentID uuid.UUID, n int) error {
	ok, err := g.licenses.ConsumeIfAvailable(ctx, tenantID, documentID, n)
	if err != nil {
		return fmt.Errorf("consume %d units: %w", n, err)
	}
	if !ok {
		return fmt.Errorf("consume %d units: capacity exhausted between check and consume", n)
	}
	return nil
}
