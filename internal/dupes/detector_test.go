package dupes

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeDocuments struct {
	repository.DocumentRepository
	docs     map[uuid.UUID]*entity.Document
	list     []*entity.Document
	statuses map[uuid.UUID]string
}

func newFakeDocuments(docs ...*entity.Document) *fakeDocuments {
	f := &fakeDocuments{
		docs:     make(map[uuid.UUID]*entity.Document),
		statuses: make(map[uuid.UUID]string),
	}
	for _, d := range docs {
		f.docs[d.ID] = d
		f.list = append(f.list, d)
	}
	return f
}

func (f *fakeDocuments) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	return f.docs[id], nil
}

func (f *fakeDocuments) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Document, error) {
	return f.list, nil
}

func (f *fakeDocuments) SetValidationStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.statuses[id] = status
	return nil
}

func doc(metadata map[string]string) *entity.Document {
	return &entity.Document{ID: uuid.New(), ExtractedMetadata: metadata}
}

var thresholds = extract.DuplicateThresholds{Name: 0.85, Address: 0.80, Signature: 0.90}

func TestDetectDuplicatesFlagsNearIdenticalName(t *testing.T) {
	t.Parallel()

	target := doc(map[string]string{"customer_name": "Acme Corporation"})
	other := doc(map[string]string{"customer_name": "ACME  corporation"})
	docs := newFakeDocuments(target, other)
	d := NewDetector(docs, nil)

	if err := d.DetectDuplicates(context.Background(), target.ID, uuid.New(), false, thresholds); err != nil {
		t.Fatalf("DetectDuplicates: %v", err)
	}
	if got := docs.statuses[target.ID]; got != string(constants.DocStatusNeedsReview) {
		t.Fatalf("target status = %q, want %q", got, constants.DocStatusNeedsReview)
	}
	if _, flagged := docs.statuses[other.ID]; flagged {
		t.Fatal("only the inspected document should be flagged")
	}
}

func TestDetectDuplicatesIgnoresDistinctValues(t *testing.T) {
	t.Parallel()

	target := doc(map[string]string{"customer_name": "Acme Corporation", "billing_address": "1 Main St"})
	other := doc(map[string]string{"customer_name": "Globex Industries", "billing_address": "99 Ocean Ave"})
	docs := newFakeDocuments(target, other)
	d := NewDetector(docs, nil)

	if err := d.DetectDuplicates(context.Background(), target.ID, uuid.New(), false, thresholds); err != nil {
		t.Fatalf("DetectDuplicates: %v", err)
	}
	if len(docs.statuses) != 0 {
		t.Fatalf("statuses = %v, want none for distinct documents", docs.statuses)
	}
}

func TestDetectDuplicatesMatchesAddressClassByKeySubstring(t *testing.T) {
	t.Parallel()

	// Key names differ between documents; the class match is by substring.
	target := doc(map[string]string{"Shipping Address": "12 Harbor Road, Springfield"})
	other := doc(map[string]string{"address_line": "12 harbor road, springfield"})
	docs := newFakeDocuments(target, other)
	d := NewDetector(docs, nil)

	if err := d.DetectDuplicates(context.Background(), target.ID, uuid.New(), false, thresholds); err != nil {
		t.Fatalf("DetectDuplicates: %v", err)
	}
	if got := docs.statuses[target.ID]; got != string(constants.DocStatusNeedsReview) {
		t.Fatalf("target status = %q, want %q", got, constants.DocStatusNeedsReview)
	}
}

func TestDetectDuplicatesSkipsMissingFieldClasses(t *testing.T) {
	t.Parallel()

	target := doc(map[string]string{"invoice_number": "INV-1"})
	other := doc(map[string]string{"invoice_number": "INV-1"})
	docs := newFakeDocuments(target, other)
	d := NewDetector(docs, nil)

	if err := d.DetectDuplicates(context.Background(), target.ID, uuid.New(), false, thresholds); err != nil {
		t.Fatalf("DetectDuplicates: %v", err)
	}
	// invoice_number is not a duplicate-detection field class.
	if len(docs.statuses) != 0 {
		t.Fatalf("statuses = %v, want none", docs.statuses)
	}
}
