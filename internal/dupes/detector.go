package dupes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/repository"
)

// Detector is the local implementation of extract.DuplicateDetector, used
// when no extraction tier is configured. It compares extracted metadata
// field-by-field with normalized Levenshtein similarity and flags probable
// duplicates for review.
type Detector struct {
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewDetector(documents repository.DocumentRepository, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{documents: documents, logger: logger}
}

func (d *Detector) DetectDuplicates(ctx context.Context, documentID, batchID uuid.UUID, checkCrossBatch bool, thresholds extract.DuplicateThresholds) error {
	target, err := d.documents.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	others, err := d.documents.ListByBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("list batch documents: %w", err)
	}

	for _, other := range others {
		if other.ID == target.ID {
			continue
		}
		if class, score := bestMatch(target, other, thresholds); class != "" {
			d.logger.Warn("probable duplicate detected",
				"document_id", target.ID,
				"duplicate_of", other.ID,
				"field_class", class,
				"similarity", score,
			)
			if err := d.documents.SetValidationStatus(ctx, target.ID, string(constants.DocStatusNeedsReview)); err != nil {
				return fmt.Errorf("flag duplicate for review: %w", err)
			}
			return nil
		}
	}
	return nil
}

// bestMatch returns the first field class whose similarity clears its
// threshold, with the score.
func bestMatch(a, b *entity.Document, thresholds extract.DuplicateThresholds) (string, float64) {
	classes := []struct {
		name      string
		threshold float64
	}{
		{"name", thresholds.Name},
		{"address", thresholds.Address},
		{"signature", thresholds.Signature},
	}
	for _, c := range classes {
		av := classValue(a.ExtractedMetadata, c.name)
		bv := classValue(b.ExtractedMetadata, c.name)
		if av == "" || bv == "" {
			continue
		}
		score := levenshtein.Similarity(normalize(av), normalize(bv), levenshtein.NewParams())
		if score >= c.threshold {
			return c.name, score
		}
	}
	return "", 0
}

// classValue finds the first metadata value whose key mentions the field
// class ("customer_name", "Name", "billing address", ...).
func classValue(metadata map[string]string, class string) string {
	for k, v := range metadata {
		if strings.Contains(strings.ToLower(k), class) {
			return v
		}
	}
	return ""
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
