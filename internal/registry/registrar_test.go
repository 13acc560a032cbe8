package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/capture"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

type fakeDocuments struct {
	repository.DocumentRepository
	created   []*repository.CreateDocumentRequest
	createErr error
}

func (f *fakeDocuments) Create(ctx context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
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

type fakeBatches struct {
	repository.BatchRepository
	totals    int
	processed int
}

func (f *fakeBatches) IncrementCounters(ctx context.Context, id uuid.UUID, total, processed int) error {
	f.totals += total
	f.processed += processed
	return nil
}

type fakeStore struct {
	data        []byte
	contentType string
	ref         string
	err         error
	puts        int
}

func (f *fakeStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	f.puts++
	if f.err != nil {
		return "", f.err
	}
	f.data = data
	f.contentType = contentType
	return f.ref, nil
}

func (f *fakeStore) Get(ctx context.Context, ref string) ([]byte, error) {
	return f.data, nil
}

func testProject(template string) *entity.Project {
	return &entity.Project{
		ID:                 uuid.New(),
		TenantID:           uuid.New(),
		FileNamingTemplate: template,
	}
}

func TestRegisterImageUploadsNormalizedBytes(t *testing.T) {
	t.Parallel()

	docs := &fakeDocuments{}
	batches := &fakeBatches{}
	store := &fakeStore{ref: "abc123.jpg"}
	r := NewRegistrar(docs, batches, store, nil)

	doc, err := r.Register(context.Background(), &RegisterRequest{
		Project:    testProject(""),
		BatchID:    uuid.New(),
		UploadedBy: uuid.New(),
		Payload: &capture.Payload{
			Filename:    "scan.png",
			ContentType: "image/jpeg",
			ImageData:   []byte("compressed"),
			Method:      "image-compress",
		},
		Raw: []byte("original-much-bigger"),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if string(store.data) != "compressed" || store.contentType != "image/jpeg" {
		t.Fatalf("store got (%q, %q), want normalized image bytes", store.data, store.contentType)
	}
	if doc.StorageRef != "abc123.jpg" {
		t.Fatalf("storage ref = %q, want abc123.jpg", doc.StorageRef)
	}
	if doc.FileType != constants.IMAGE {
		t.Fatalf("file type = %q, want %q", doc.FileType, constants.IMAGE)
	}
	if batches.totals != 1 || batches.processed != 1 {
		t.Fatalf("counters = (%d, %d), want (1, 1)", batches.totals, batches.processed)
	}
}

func TestRegisterPDFUploadsOriginalBytes(t *testing.T) {
	t.Parallel()

	docs := &fakeDocuments{}
	store := &fakeStore{ref: "abc123.pdf"}
	r := NewRegistrar(docs, &fakeBatches{}, store, nil)

	doc, err := r.Register(context.Background(), &RegisterRequest{
		Project:    testProject(""),
		BatchID:    uuid.New(),
		UploadedBy: uuid.New(),
		Payload: &capture.Payload{
			Filename:    "invoice.pdf",
			ContentType: "application/pdf",
			IsPDF:       true,
			Text:        "extracted text",
			Method:      "pdf-text",
		},
		Raw: []byte("%PDF-1.7 raw"),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if string(store.data) != "%PDF-1.7 raw" || store.contentType != "application/pdf" {
		t.Fatalf("store got (%q, %q), want original pdf bytes", store.data, store.contentType)
	}
	if doc.FileType != constants.PDF {
		t.Fatalf("file type = %q, want %q", doc.FileType, constants.PDF)
	}
}

func TestRegisterAppliesNamingTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		metadata map[string]string
		want     string
	}{
		{
			name:     "complete metadata renames",
			template: "{invoice}_{date}.pdf",
			metadata: map[string]string{"invoice": "INV-1", "date": "2024-06-01"},
			want:     "INV-1_2024-06-01.pdf",
		},
		{
			name:     "incomplete metadata keeps original",
			template: "{invoice}_{date}.pdf",
			metadata: map[string]string{"invoice": "INV-1"},
			want:     "upload.pdf",
		},
		{
			name:     "no template keeps original",
			template: "",
			metadata: nil,
			want:     "upload.pdf",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			docs := &fakeDocuments{}
			r := NewRegistrar(docs, &fakeBatches{}, nil, nil)
			_, err := r.Register(context.Background(), &RegisterRequest{
				Project:    testProject(tt.template),
				BatchID:    uuid.New(),
				UploadedBy: uuid.New(),
				Payload:    &capture.Payload{Filename: "upload.pdf", IsPDF: true, Text: "t"},
				Metadata:   tt.metadata,
			})
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			if got := docs.created[0].Filename; got != tt.want {
				t.Fatalf("stored filename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegisterUploadFailureWritesNothing(t *testing.T) {
	t.Parallel()

	docs := &fakeDocuments{}
	batches := &fakeBatches{}
	store := &fakeStore{err: errors.New("bucket gone")}
	r := NewRegistrar(docs, batches, store, nil)

	_, err := r.Register(context.Background(), &RegisterRequest{
		Project:    testProject(""),
		BatchID:    uuid.New(),
		UploadedBy: uuid.New(),
		Payload:    &capture.Payload{Filename: "scan.jpg", ContentType: "image/jpeg", ImageData: []byte("x")},
	})
	if !errors.Is(err, common.ErrUpload) {
		t.Fatalf("error = %v, want upload error", err)
	}
	if len(docs.created) != 0 {
		t.Fatal("document row written despite failed upload")
	}
	if batches.totals != 0 || batches.processed != 0 {
		t.Fatal("counters moved despite failed upload")
	}
}

func TestRegisterCreateFailureLeavesCounters(t *testing.T) {
	t.Parallel()

	docs := &fakeDocuments{createErr: errors.New("constraint violated")}
	batches := &fakeBatches{}
	r := NewRegistrar(docs, batches, nil, nil)

	_, err := r.Register(context.Background(), &RegisterRequest{
		Project:    testProject(""),
		BatchID:    uuid.New(),
		UploadedBy: uuid.New(),
		Payload:    &capture.Payload{Filename: "scan.jpg", ImageData: []byte("x")},
	})
	if !errors.Is(err, common.ErrRegistration) {
		t.Fatalf("error = %v, want registration error", err)
	}
	if batches.totals != 0 || batches.processed != 0 {
		t.Fatal("counters moved despite failed registration")
	}
	if !strings.Contains(err.Error(), "scan.jpg") {
		t.Fatalf("error %v does not name the file", err)
	}
}

func TestRegisterWithoutStoreKeepsPayloadInline(t *testing.T) {
	t.Parallel()

	docs := &fakeDocuments{}
	r := NewRegistrar(docs, &fakeBatches{}, nil, nil)

	doc, err := r.Register(context.Background(), &RegisterRequest{
		Project:    testProject(""),
		BatchID:    uuid.New(),
		UploadedBy: uuid.New(),
		Payload:    &capture.Payload{Filename: "scan.jpg", ImageData: []byte("x")},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if doc.StorageRef != "" {
		t.Fatalf("storage ref = %q, want empty without a store", doc.StorageRef)
	}
}
