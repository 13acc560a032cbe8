package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entlicense "github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/internal/entity"
)

type LicenseRepository interface {
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.License, error)
	// ConsumeIfAvailable atomically decrements remaining_documents by units
	// when at least that many remain and the license has not expired.
	// Returns false without error when capacity is insufficient. On success
	// a usage row ties the consumption to the document for audit.
	ConsumeIfAvailable(ctx context.Context, tenantID, documentID uuid.UUID, units int) (bool, error)
	ListUsage(ctx context.Context, licenseID uuid.UUID) ([]*entity.LicenseUsage, error)
}

type licenseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLicenseRepository(client *ent.Client, logger *slog.Logger) LicenseRepository {
	return &licenseRepository{
		client: client,
		logger: logger,
	}
}

func (r *licenseRepository) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.License, error) {
	row, err := r.client.License.Query().
		Where(entlicense.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get license", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return toLicense(row), nil
}

func (r *licenseRepository) ConsumeIfAvailable(ctx context.Context, tenantID, documentID uuid.UUID, units int) (bool, error) {
	lic, err := r.client.License.Query().
		Where(entlicense.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to load license for consume", "tenant_id", tenantID, "error", err)
		return false, err
	}

	// Single conditional decrement; the predicate serializes concurrent
	// consumers at the store layer.
	n, err := r.client.License.Update().
		Where(
			entlicense.ID(lic.ID),
			entlicense.RemainingDocumentsGTE(units),
			entlicense.ExpiresAtGT(time.Now()),
		).
		AddRemainingDocuments(-units).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to consume license units", "tenant_id", tenantID, "document_id", documentID, "units", units, "error", err)
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	if _, err := r.client.LicenseUsage.Create().
		SetLicenseID(lic.ID).
		SetDocumentID(documentID).
		SetUnits(units).
		Save(ctx); err != nil {
		// The decrement already happened; a missing audit row degrades the
		// ledger, not the quota itself.
		r.logger.Warn("failed to record license usage", "license_id", lic.ID, "document_id", documentID, "error", err)
	}

	r.logger.Info("license units consumed", "tenant_id", tenantID, "document_id", documentID, "units", units)
	return true, nil
}

func (r *licenseRepository) ListUsage(ctx context.Context, licenseID uuid.UUID) ([]*entity.LicenseUsage, error) {
	lic, err := r.client.License.Get(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	rows, err := lic.QueryUsages().All(ctx)
	if err != nil {
		r.logger.Error("failed to list license usage", "license_id", licenseID, "error", err)
		return nil, err
	}
	out := make([]*entity.LicenseUsage, len(rows))
	for i, u := range rows {
		out[i] = &entity.LicenseUsage{
			ID:         u.ID,
			LicenseID:  u.LicenseID,
			DocumentID: u.DocumentID,
			Units:      u.Units,
			ConsumedAt: u.ConsumedAt,
		}
	}
	return out, nil
}
