package extract

import (
	"context"

	"github.com/google/uuid"
)

// DuplicateThresholds holds per-field-class similarity cutoffs above which
// two documents are flagged as probable duplicates.
type DuplicateThresholds struct {
	Name      float64 `json:"name"`
	Address   float64 `json:"address"`
	Signature float64 `json:"signature"`
}

// BatchTrigger asks the extraction tier to process a batch's pending
// documents under a concurrency cap. Best-effort: callers log failures and
// never retry.
type BatchTrigger interface {
	TriggerBatchExtraction(ctx context.Context, batchID uuid.UUID, maxParallel int) error
}

// DuplicateDetector runs duplicate detection for one document against the
// rest of its batch.
type DuplicateDetector interface {
	DetectDuplicates(ctx context.Context, documentID, batchID uuid.UUID, checkCrossBatch bool, thresholds DuplicateThresholds) error
}
