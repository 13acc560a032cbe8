package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeLicenses struct {
	repository.LicenseRepository
	license    *entity.License
	getErr     error
	consumeOK  bool
	consumeErr error
	consumed   int
}

func (f *fakeLicenses) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.License, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.license, nil
}

func (f *fakeLicenses) ConsumeIfAvailable(ctx context.Context, tenantID, documentID uuid.UUID, units int) (bool, error) {
	if f.consumeErr != nil {
		return false, f.consumeErr
	}
	if f.consumeOK {
		f.consumed += units
	}
	return f.consumeOK, nil
}

func TestHasCapacity(t *testing.T) {
	t.Parallel()

	tenant := uuid.New()
	tests := []struct {
		name    string
		license *entity.License
		n       int
		want    bool
	}{
		{
			name:    "capacity available",
			license: &entity.License{TenantID: tenant, RemainingDocuments: 5, ExpiresAt: time.Now().Add(time.Hour)},
			n:       1,
			want:    true,
		},
		{
			name:    "exactly enough",
			license: &entity.License{TenantID: tenant, RemainingDocuments: 3, ExpiresAt: time.Now().Add(time.Hour)},
			n:       3,
			want:    true,
		},
		{
			name:    "exhausted",
			license: &entity.License{TenantID: tenant, RemainingDocuments: 0, ExpiresAt: time.Now().Add(time.Hour)},
			n:       1,
			want:    false,
		},
		{
			name:    "expired license",
			license: &entity.License{TenantID: tenant, RemainingDocuments: 5, ExpiresAt: time.Now().Add(-time.Minute)},
			n:       1,
			want:    false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGate(&fakeLicenses{license: tt.license}, nil)
			got, err := g.HasCapacity(context.Background(), tenant, tt.n)
			if err != nil {
				t.Fatalf("HasCapacity: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HasCapacity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasCapacityPropagatesLookupError(t *testing.T) {
	t.Parallel()

	g := NewGate(&fakeLicenses{getErr: errors.New("no license row")}, nil)
	if _, err := g.HasCapacity(context.Background(), uuid.New(), 1); err == nil {
		t.Fatal("expected error when the license cannot be loaded")
	}
}

func TestConsume(t *testing.T) {
	t.Parallel()

	t.Run("success decrements", func(t *testing.T) {
		t.Parallel()
		lics := &fakeLicenses{consumeOK: true}
		g := NewGate(lics, nil)
		if err := g.Consume(context.Background(), uuid.New(), uuid.New(), 1); err != nil {
			t.Fatalf("Consume: %v", err)
		}
		if lics.consumed != 1 {
			t.Fatalf("consumed = %d, want 1", lics.consumed)
		}
	})

	t.Run("lost race reports exhaustion", func(t *testing.T) {
		t.Parallel()
		g := NewGate(&fakeLicenses{consumeOK: false}, nil)
		err := g.Consume(context.Background(), uuid.New(), uuid.New(), 1)
		if err == nil {
			t.Fatal("expected error when the conditional decrement matched no rows")
		}
	})

	t.Run("store error surfaces", func(t *testing.T) {
		t.Parallel()
		g := NewGate(&fakeLicenses{consumeErr: errors.New("deadlock")}, nil)
		if err := g.Consume(context.Background(), uuid.New(), uuid.New(), 1); err == nil {
			t.Fatal("expected error")
		}
	})
}
