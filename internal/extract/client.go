package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client calls the external extraction tier over HTTP JSON.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type batchExtractionRequest struct {
	BatchID     uuid.UUID `json:"batch_id"`
	MaxParallel int       `json:"max_parallel"`
}

func (c *Client) TriggerBatchExtraction(ctx context.Context, batchID uuid.UUID, maxParallel int) error {
	_, _, err := c.sendJSON(ctx, c.baseURL+"/v1/batches/extract", batchExtractionRequest{
		BatchID:     batchID,
		MaxParallel: maxParallel,
	})
	return err
}

type duplicateDetectionRequest struct {
	DocumentID      uuid.UUID           `json:"document_id"`
	BatchID         uuid.UUID           `json:"batch_id"`
	CheckCrossBatch bool                `json:"check_cross_batch"`
	Thresholds      DuplicateThresholds `json:"thresholds"`
}

func (c *Client) DetectDuplicates(ctx context.Context, documentID, batchID uuid.UUID, checkCrossBatch bool, thresholds DuplicateThresholds) error {
	_, _, err := c.sendJSON(ctx, c.baseURL+"/v1/documents/duplicates", duplicateDetectionRequest{
		DocumentID:      documentID,
		BatchID:         batchID,
		CheckCrossBatch: checkCrossBatch,
		Thresholds:      thresholds,
	})
	return err
}

// sendJSON posts a JSON body and returns the raw response. Callers decide
// what, if anything, to do with non-2xx errors.
func (c *Client) sendJSON(ctx context.Context, url string, body any) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		c.logger.Error("extract.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.logger.Error("extract.http.build_request_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("extract.http.send_error", "req_id", reqID, "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("extract.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("extract.http.response",
		"req_id", reqID,
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
