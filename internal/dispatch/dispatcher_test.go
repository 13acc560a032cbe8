package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeJobs struct {
	repository.JobRepository
	last *repository.EnqueueJobRequest
	err  error
}

func (f *fakeJobs) Enqueue(ctx context.Context, req *repository.EnqueueJobRequest) (*entity.ExtractionJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = req
	return &entity.ExtractionJob{ID: uuid.New(), JobType: req.JobType, Payload: req.Payload}, nil
}

func decodePayload(t *testing.T, raw json.RawMessage) entity.JobPayload {
	t.Helper()
	var p entity.JobPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("decode job payload: %v", err)
	}
	return p
}

func TestDispatchBuildsJobPayload(t *testing.T) {
	t.Parallel()

	project := &entity.Project{
		ID:                uuid.New(),
		TenantID:          uuid.New(),
		ExtractionFields:  json.RawMessage(`[{"name":"total","type":"number"}]`),
		CheckScanningMode: true,
	}

	tests := []struct {
		name       string
		doc        *entity.Document
		payload    *capture.Payload
		wantInline bool
		wantText   string
		wantPDF    bool
	}{
		{
			name:       "image with storage ref stays by reference",
			doc:        &entity.Document{ID: uuid.New(), StorageRef: "abc.jpg", UploadedBy: uuid.New()},
			payload:    &capture.Payload{ImageData: []byte("jpeg-bytes")},
			wantInline: false,
		},
		{
			name:       "image without ref rides inline",
			doc:        &entity.Document{ID: uuid.New(), UploadedBy: uuid.New()},
			payload:    &capture.Payload{ImageData: []byte("jpeg-bytes")},
			wantInline: true,
		},
		{
			name:     "text-path pdf carries content",
			doc:      &entity.Document{ID: uuid.New(), StorageRef: "abc.pdf", UploadedBy: uuid.New()},
			payload:  &capture.Payload{IsPDF: true, Text: "invoice text"},
			wantText: "invoice text",
			wantPDF:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			jobs := &fakeJobs{}
			d := NewDispatcher(jobs, nil)

			job, err := d.Dispatch(context.Background(), project, tt.doc, tt.payload)
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if jobs.last.JobType != constants.JobTypeExtractDocument {
				t.Fatalf("job type = %q, want %q", jobs.last.JobType, constants.JobTypeExtractDocument)
			}
			if jobs.last.TenantID != project.TenantID {
				t.Fatal("job must carry the project's tenant")
			}
			if jobs.last.SubmittedBy != tt.doc.UploadedBy {
				t.Fatal("job must carry the uploading user")
			}

			p := decodePayload(t, job.Payload)
			if p.DocumentID != tt.doc.ID {
				t.Fatal("payload does not reference the document")
			}
			if got := len(p.ImageData) > 0; got != tt.wantInline {
				t.Fatalf("inline image = %v, want %v", got, tt.wantInline)
			}
			if p.Content != tt.wantText {
				t.Fatalf("content = %q, want %q", p.Content, tt.wantText)
			}
			if p.IsPDF != tt.wantPDF {
				t.Fatalf("is_pdf = %v, want %v", p.IsPDF, tt.wantPDF)
			}
			if string(p.ExtractionFields) != string(project.ExtractionFields) {
				t.Fatal("extraction fields not forwarded")
			}
			if !p.CheckScanningMode {
				t.Fatal("check scanning mode not forwarded")
			}
		})
	}
}

func TestDispatchEnqueueFailure(t *testing.T) {
	t.Parallel()

	jobs := &fakeJobs{err: errors.New("insert failed")}
	d := NewDispatcher(jobs, nil)

	_, err := d.Dispatch(context.Background(),
		&entity.Project{ID: uuid.New(), TenantID: uuid.New()},
		&entity.Document{ID: uuid.New(), UploadedBy: uuid.New()},
		&capture.Payload{ImageData: []byte("x")},
	)
	if !errors.Is(err, common.ErrJobDispatch) {
		t.Fatalf("error = %v, want job dispatch error", err)
	}
}
