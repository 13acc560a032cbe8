package automation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeTrigger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeTrigger) TriggerBatchExtraction(ctx context.Context, batchID uuid.UUID, maxParallel int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

type fakeDetector struct {
	mu       sync.Mutex
	seen     []uuid.UUID
	failOnce bool
}

func (f *fakeDetector) DetectDuplicates(ctx context.Context, documentID, batchID uuid.UUID, checkCrossBatch bool, thresholds extract.DuplicateThresholds) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, documentID)
	if f.failOnce {
		f.failOnce = false
		return errors.New("detector unavailable")
	}
	return nil
}

type fakeDocuments struct {
	repository.DocumentRepository
	docs    []*entity.Document
	listErr error
}

func (f *fakeDocuments) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

type fakeBatches struct {
	repository.BatchRepository
	mu       sync.Mutex
	statuses []string
}

func (f *fakeBatches) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	return nil
}

func testCfg() common.AutomationConfig {
	return common.AutomationConfig{
		MaxExtractParallel: 3,
		DuplicateDelay:     time.Millisecond,
		NameThreshold:      0.85,
		AddressThreshold:   0.80,
		SignatureThreshold: 0.90,
	}
}

func batchDocs(n int) []*entity.Document {
	out := make([]*entity.Document, n)
	for i := range out {
		out[i] = &entity.Document{ID: uuid.New()}
	}
	return out
}

func TestRunSkipsWhenNothingSucceeded(t *testing.T) {
	t.Parallel()

	trigger := &fakeTrigger{}
	c := NewCoordinator(&fakeDocuments{}, &fakeBatches{}, trigger, &fakeDetector{}, testCfg(), nil)

	c.Run(context.Background(), uuid.New(), 0)

	if trigger.calls != 0 {
		t.Fatal("extraction triggered despite zero successful files")
	}
}

func TestRunTriggersAndAdvancesStatus(t *testing.T) {
	t.Parallel()

	trigger := &fakeTrigger{}
	batches := &fakeBatches{}
	c := NewCoordinator(&fakeDocuments{docs: batchDocs(3)}, batches, trigger, &fakeDetector{}, testCfg(), nil)

	c.Run(context.Background(), uuid.New(), 3)

	if trigger.calls != 1 {
		t.Fatalf("trigger calls = %d, want 1", trigger.calls)
	}
	if len(batches.statuses) != 1 || batches.statuses[0] != string(constants.BatchStatusIndexing) {
		t.Fatalf("statuses = %v, want [%s]", batches.statuses, constants.BatchStatusIndexing)
	}
}

func TestRunTriggerFailureDoesNotAdvanceStatus(t *testing.T) {
	t.Parallel()

	trigger := &fakeTrigger{err: errors.New("extraction tier down")}
	batches := &fakeBatches{}
	detector := &fakeDetector{}
	c := NewCoordinator(&fakeDocuments{docs: batchDocs(2)}, batches, trigger, detector, testCfg(), nil)

	// Must not panic or return an error to the caller; automation is
	// best-effort.
	c.Run(context.Background(), uuid.New(), 2)

	if len(batches.statuses) != 0 {
		t.Fatalf("statuses = %v, want none after a failed trigger", batches.statuses)
	}
	if len(detector.seen) != 2 {
		t.Fatal("duplicate detection should still run after a failed trigger")
	}
}

func TestRunSkipsDuplicateDetectionForSingleDocument(t *testing.T) {
	t.Parallel()

	detector := &fakeDetector{}
	c := NewCoordinator(&fakeDocuments{docs: batchDocs(1)}, &fakeBatches{}, &fakeTrigger{}, detector, testCfg(), nil)

	c.Run(context.Background(), uuid.New(), 1)

	if len(detector.seen) != 0 {
		t.Fatal("duplicate detection ran on a single-document batch")
	}
}

func TestRunDetectorFailureContinuesWithRemainingDocuments(t *testing.T) {
	t.Parallel()

	detector := &fakeDetector{failOnce: true}
	c := NewCoordinator(&fakeDocuments{docs: batchDocs(3)}, &fakeBatches{}, &fakeTrigger{}, detector, testCfg(), nil)

	c.Run(context.Background(), uuid.New(), 3)

	if len(detector.seen) != 3 {
		t.Fatalf("detector saw %d documents, want all 3", len(detector.seen))
	}
}

func TestRunUnreadableBatchSkipsDetection(t *testing.T) {
	t.Parallel()

	detector := &fakeDetector{}
	docs := &fakeDocuments{listErr: errors.New("relation missing")}
	c := NewCoordinator(docs, &fakeBatches{}, &fakeTrigger{}, detector, testCfg(), nil)

	c.Run(context.Background(), uuid.New(), 2)

	if len(detector.seen) != 0 {
		t.Fatal("detection ran despite an unreadable batch")
	}
}

func TestRunCancelledBeforeDelaySkipsDetection(t *testing.T) {
	t.Parallel()

	detector := &fakeDetector{}
	cfg := testCfg()
	cfg.DuplicateDelay = time.Hour
	c := NewCoordinator(&fakeDocuments{docs: batchDocs(2)}, &fakeBatches{}, &fakeTrigger{}, detector, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx, uuid.New(), 2)

	if len(detector.seen) != 0 {
		t.Fatal("detection ran despite cancellation before the delay elapsed")
	}
}
