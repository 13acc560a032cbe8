package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/automation"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/dispatch"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/quota"
	"github.com/docflowhq/docflow/internal/registry"
	"github.com/docflowhq/docflow/internal/repository"
)

type noopTextReader struct{}

func (noopTextReader) ReadText(data []byte, maxPages int) (string, int, error) { return "", 0, nil }

type noopRasterizer struct{}

func (noopRasterizer) RasterizePage(data []byte, page int, scale float64, maxDim int) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
}

type pipeProjects struct {
	repository.ProjectRepository
	project *entity.Project
}

func (f *pipeProjects) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return f.project, nil
}

type pipeDocuments struct {
	repository.DocumentRepository
	mu            sync.Mutex
	created       int
	inFlight      int
	maxInFlight   int
	simulateDelay time.Duration
}

func (f *pipeDocuments) Create(ctx context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	f.mu.Lock()
	f.created++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	if f.simulateDelay > 0 {
		time.Sleep(f.simulateDelay)
	}

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
	return &entity.Document{
		ID:         uuid.New(),
		ProjectID:  req.ProjectID,
		BatchID:    req.BatchID,
		Filename:   req.Filename,
		FileType:   req.FileType,
		StorageRef: req.StorageRef,
		UploadedBy: req.UploadedBy,
	}, nil
}

type pipeBatches struct {
	repository.BatchRepository
	mu        sync.Mutex
	totals    int
	processed int
	errCount  int
	statuses  []string
}

func (f *pipeBatches) IncrementCounters(ctx context.Context, id uuid.UUID, total, processed int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.totals += total
	f.processed += processed
	return nil
}

func (f *pipeBatches) IncrementErrorCount(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errCount++
	return nil
}

func (f *pipeBatches) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	return nil
}

type pipeJobs struct {
	repository.JobRepository
	mu       sync.Mutex
	enqueued []*repository.EnqueueJobRequest
	err      error
}

func (f *pipeJobs) Enqueue(ctx context.Context, req *repository.EnqueueJobRequest) (*entity.ExtractionJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, req)
	return &entity.ExtractionJob{ID: uuid.New(), JobType: req.JobType, Payload: req.Payload}, nil
}

type pipeLicenses struct {
	repository.LicenseRepository
	mu        sync.Mutex
	remaining int
	consumed  int
}

func (f *pipeLicenses) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.License, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &entity.License{
		TenantID:           tenantID,
		RemainingDocuments: f.remaining,
		ExpiresAt:          time.Now().Add(time.Hour),
	}, nil
}

func (f *pipeLicenses) ConsumeIfAvailable(ctx context.Context, tenantID, documentID uuid.UUID, units int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remaining < units {
		return false, nil
	}
	f.remaining -= units
	f.consumed += units
	return true, nil
}

type pipeFixture struct {
	pipe      *Pipeline
	projects  *pipeProjects
	documents *pipeDocuments
	batches   *pipeBatches
	jobs      *pipeJobs
	licenses  *pipeLicenses
}

func newPipeFixture(remaining, maxParallel int, coordinator *automation.Coordinator) *pipeFixture {
	f := &pipeFixture{
		projects:  &pipeProjects{project: &entity.Project{ID: uuid.New(), TenantID: uuid.New()}},
		documents: &pipeDocuments{},
		batches:   &pipeBatches{},
		jobs:      &pipeJobs{},
		licenses:  &pipeLicenses{remaining: remaining},
	}
	normalizer := capture.NewNormalizer(capture.Config{}, noopTextReader{}, noopRasterizer{}, nil)
	f.pipe = New(
		normalizer,
		quota.NewGate(f.licenses, nil),
		registry.NewRegistrar(f.documents, f.batches, nil, nil),
		dispatch.NewDispatcher(f.jobs, nil),
		NewWaiter(f.documents, common.PollConfig{Interval: time.Millisecond, MaxAttempts: 2}, nil),
		coordinator,
		f.projects,
		f.batches,
		maxParallel,
		nil,
	)
	return f
}

func TestSubmitFileHappyPath(t *testing.T) {
	t.Parallel()

	f := newPipeFixture(5, 1, nil)
	res, err := f.pipe.SubmitFile(context.Background(), f.projects.project.ID, uuid.New(), uuid.New(), FileInput{
		Filename: "scan.jpg",
		Data:     []byte("small-image-bytes"),
	})
	if err != nil {
		t.Fatalf("SubmitFile: %v", err)
	}
	if res.DocumentID == uuid.Nil || res.JobID == uuid.Nil {
		t.Fatal("result missing document or job id")
	}
	if f.documents.created != 1 {
		t.Fatalf("documents created = %d, want 1", f.documents.created)
	}
	if len(f.jobs.enqueued) != 1 {
		t.Fatalf("jobs enqueued = %d, want 1", len(f.jobs.enqueued))
	}
	if f.licenses.consumed != 1 {
		t.Fatalf("quota consumed = %d, want 1", f.licenses.consumed)
	}
	if f.batches.totals != 1 || f.batches.processed != 1 {
		t.Fatalf("batch counters = (%d, %d), want (1, 1)", f.batches.totals, f.batches.processed)
	}

	var payload entity.JobPayload
	if err := json.Unmarshal(f.jobs.enqueued[0].Payload, &payload); err != nil {
		t.Fatalf("decode job payload: %v", err)
	}
	if payload.DocumentID != res.DocumentID {
		t.Fatal("job payload does not reference the registered document")
	}
	if string(payload.ImageData) != "small-image-bytes" {
		t.Fatal("inline image bytes missing from job payload without a storage ref")
	}
}

func TestSubmitFileQuotaExhaustedWritesNothing(t *testing.T) {
	t.Parallel()

	f := newPipeFixture(0, 1, nil)
	_, err := f.pipe.SubmitFile(context.Background(), f.projects.project.ID, uuid.New(), uuid.New(), FileInput{
		Filename: "scan.jpg",
		Data:     []byte("x"),
	})
	if !errors.Is(err, common.ErrQuotaExceeded) {
		t.Fatalf("error = %v, want quota exceeded", err)
	}
	if f.documents.created != 0 {
		t.Fatal("document written despite exhausted quota")
	}
	if len(f.jobs.enqueued) != 0 {
		t.Fatal("job enqueued despite exhausted quota")
	}
	if f.batches.totals != 0 || f.batches.processed != 0 {
		t.Fatal("batch counters moved despite exhausted quota")
	}
}

func TestSubmitFileDispatchFailureKeepsDocument(t *testing.T) {
	t.Parallel()

	f := newPipeFixture(5, 1, nil)
	f.jobs.err = errors.New("queue table locked")

	res, err := f.pipe.SubmitFile(context.Background(), f.projects.project.ID, uuid.New(), uuid.New(), FileInput{
		Filename: "scan.jpg",
		Data:     []byte("x"),
	})
	if !errors.Is(err, common.ErrJobDispatch) {
		t.Fatalf("error = %v, want job dispatch error", err)
	}
	if res == nil || res.DocumentID == uuid.Nil {
		t.Fatal("dispatch failure must still report the registered document")
	}
	if f.documents.created != 1 {
		t.Fatal("document should remain after dispatch failure")
	}
}

func TestSubmitBatchMixedOutcomes(t *testing.T) {
	t.Parallel()

	f := newPipeFixture(10, 2, nil)
	files := []FileInput{
		{Filename: "a.jpg", Data: []byte("a")},
		{Filename: "report.docx", Data: []byte("not supported")},
		{Filename: "b.png", Data: []byte("b")},
	}

	results, stats, err := f.pipe.SubmitBatch(context.Background(), f.projects.project.ID, uuid.New(), uuid.New(), files)
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	if stats.Submitted != 3 || stats.Succeeded != 2 || stats.Failed != 1 {
		t.Fatalf("stats = %+v, want 3/2/1", stats)
	}
	if results[1].Err == "" {
		t.Fatal("unsupported file must carry its error")
	}
	if results[0].Err != "" || results[2].Err != "" {
		t.Fatal("good files must not be affected by the bad one")
	}
	if f.batches.errCount != 1 {
		t.Fatalf("batch error count = %d, want 1", f.batches.errCount)
	}
	if f.batches.processed != 2 {
		t.Fatalf("processed counter = %d, want 2", f.batches.processed)
	}
}

func TestSubmitBatchRespectsConcurrencyLimit(t *testing.T) {
	t.Parallel()

	f := newPipeFixture(20, 2, nil)
	f.documents.simulateDelay = 10 * time.Millisecond

	files := make([]FileInput, 8)
	for i := range files {
		files[i] = FileInput{Filename: "f.jpg", Data: []byte("x")}
	}
	_, stats, err := f.pipe.SubmitBatch(context.Background(), f.projects.project.ID, uuid.New(), uuid.New(), files)
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	if stats.Succeeded != 8 {
		t.Fatalf("succeeded = %d, want 8", stats.Succeeded)
	}
	if f.documents.maxInFlight > 2 {
		t.Fatalf("max in-flight registrations = %d, want <= 2", f.documents.maxInFlight)
	}
}

type recordingTrigger struct {
	calls chan struct {
		batchID     uuid.UUID
		maxParallel int
	}
}

func (r *recordingTrigger) TriggerBatchExtraction(ctx context.Context, batchID uuid.UUID, maxParallel int) error {
	r.calls <- struct {
		batchID     uuid.UUID
		maxParallel int
	}{batchID, maxParallel}
	return nil
}

func TestSubmitBatchHandsOffToCoordinator(t *testing.T) {
	t.Parallel()

	trigger := &recordingTrigger{calls: make(chan struct {
		batchID     uuid.UUID
		maxParallel int
	}, 1)}

	batches := &pipeBatches{}
	documents := &pipeDocuments{}
	coordinator := automation.NewCoordinator(documents, batches, trigger, nil, common.AutomationConfig{
		MaxExtractParallel: 3,
		DuplicateDelay:     time.Millisecond,
	}, nil)

	f := newPipeFixture(10, 2, coordinator)
	batchID := uuid.New()
	_, stats, err := f.pipe.SubmitBatch(context.Background(), f.projects.project.ID, batchID, uuid.New(), []FileInput{
		{Filename: "a.jpg", Data: []byte("a")},
		{Filename: "b.jpg", Data: []byte("b")},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	if stats.Succeeded != 2 {
		t.Fatalf("succeeded = %d, want 2", stats.Succeeded)
	}

	select {
	case call := <-trigger.calls:
		if call.batchID != batchID {
			t.Fatalf("trigger batch = %v, want %v", call.batchID, batchID)
		}
		if call.maxParallel != 3 {
			t.Fatalf("trigger max parallel = %d, want 3", call.maxParallel)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("coordinator never triggered batch extraction")
	}
}
