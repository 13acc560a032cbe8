package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/repository"
)

// pollDocuments serves a scripted sequence of reads for one document.
type pollDocuments struct {
	repository.DocumentRepository
	texts   []string // one entry per read; last entry repeats
	readErr error
	reads   int
}

func (f *pollDocuments) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	i := f.reads - 1
	if i >= len(f.texts) {
		i = len(f.texts) - 1
	}
	return &entity.Document{ID: id, ExtractedText: f.texts[i]}, nil
}

func TestWaitCompletesWhenTextAppears(t *testing.T) {
	t.Parallel()

	docs := &pollDocuments{texts: []string{"", "", "hello world"}}
	w := NewWaiter(docs, common.PollConfig{Interval: time.Millisecond, MaxAttempts: 10}, nil)

	res, err := w.Wait(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if res.Text != "hello world" {
		t.Fatalf("text = %q, want hello world", res.Text)
	}
	if res.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", res.Attempts)
	}
	if docs.reads != 3 {
		t.Fatalf("reads = %d, want 3", docs.reads)
	}
}

func TestWaitCompletesOnFirstAttempt(t *testing.T) {
	t.Parallel()

	docs := &pollDocuments{texts: []string{"done"}}
	w := NewWaiter(docs, common.PollConfig{Interval: time.Hour, MaxAttempts: 5}, nil)

	// Interval is an hour: completion on the first read must not sleep.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := w.Wait(context.Background(), uuid.New()); err != nil {
			t.Errorf("Wait: %v", err)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait slept despite immediate completion")
	}
}

func TestWaitTimesOutAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	docs := &pollDocuments{texts: []string{""}}
	w := NewWaiter(docs, common.PollConfig{Interval: time.Millisecond, MaxAttempts: 4}, nil)

	_, err := w.Wait(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrPollTimeout) {
		t.Fatalf("error = %v, want poll timeout", err)
	}
	if docs.reads != 4 {
		t.Fatalf("reads = %d, want exactly MaxAttempts", docs.reads)
	}
}

func TestWaitReadErrorAbortsImmediately(t *testing.T) {
	t.Parallel()

	docs := &pollDocuments{readErr: errors.New("connection reset")}
	w := NewWaiter(docs, common.PollConfig{Interval: time.Millisecond, MaxAttempts: 10}, nil)

	_, err := w.Wait(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrPollRead) {
		t.Fatalf("error = %v, want poll read error", err)
	}
	if errors.Is(err, common.ErrPollTimeout) {
		t.Fatal("read failure must not be reported as a timeout")
	}
	if docs.reads != 1 {
		t.Fatalf("reads = %d, want 1", docs.reads)
	}
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	docs := &pollDocuments{texts: []string{""}}
	w := NewWaiter(docs, common.PollConfig{Interval: time.Hour, MaxAttempts: 10}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Wait(ctx, uuid.New())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
