package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/repository"
)

// WaitResult carries the populated fields of a completed extraction.
type WaitResult struct {
	Text       string
	Metadata   map[string]string
	LineItems  json.RawMessage
	WordBoxes  json.RawMessage
	Confidence *float32
	Attempts   int
}

// Waiter is the interactive completion tracker: it re-reads one document at
// a fixed interval until its extracted text is non-empty. The signal is
// content-based; there is no status flag to watch. Timing out does not
// cancel the job — extraction may still complete later server-side.
//
// An event-backed implementation can replace this once the extraction tier
// publishes per-document completion events.
type Waiter struct {
	documents repository.DocumentRepository
	cfg       common.PollConfig
	logger    *slog.Logger
}

func NewWaiter(documents repository.DocumentRepository, cfg common.PollConfig, logger *slog.Logger) *Waiter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 30
	}
	return &Waiter{documents: documents, cfg: cfg, logger: logger}
}

// Wait issues at most MaxAttempts reads. A read error aborts immediately;
// it is reported distinctly from a timeout.
func (w *Waiter) Wait(ctx context.Context, documentID uuid.UUID) (*WaitResult, error) {
	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		doc, err := w.documents.GetByID(ctx, documentID)
		if err != nil {
			w.logger.Error("completion poll read failed", "document_id", documentID, "attempt", attempt, "error", err)
			return nil, common.PollReadError(documentID.String(), err)
		}
		if doc.ExtractedText != "" {
			w.logger.Info("extraction completed", "document_id", documentID, "attempts", attempt)
			return &WaitResult{
				Text:       doc.ExtractedText,
				Metadata:   doc.ExtractedMetadata,
				LineItems:  doc.LineItems,
				WordBoxes:  doc.WordBoxes,
				Confidence: doc.Confidence,
				Attempts:   attempt,
			}, nil
		}
		if attempt == w.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(w.cfg.Interval):
		}
	}
	w.logger.Warn("extraction wait timed out", "document_id", documentID, "attempts", w.cfg.MaxAttempts)
	return nil, common.PollTimeoutError(documentID.String())
}
