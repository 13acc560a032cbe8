package local

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := []byte("%PDF-1.7 payload")
	ref, err := s.Put(context.Background(), data, "application/pdf")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasSuffix(ref, ".pdf") {
		t.Fatalf("ref = %q, want .pdf suffix for pdf content", ref)
	}

	got, err := s.Get(context.Background(), ref)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round-tripped bytes differ")
	}
}

func TestPutIssuesUniqueRefs(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		ref, err := s.Put(context.Background(), []byte("x"), "image/jpeg")
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if seen[ref] {
			t.Fatalf("duplicate ref %q", ref)
		}
		seen[ref] = true
	}
}

func TestGetRejectsPathEscapes(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, ref := range []string{"", "../secret", "a/b.jpg", "..", "x/../y"} {
		if _, err := s.Get(context.Background(), ref); err == nil {
			t.Fatalf("Get(%q) succeeded, want rejection", ref)
		}
	}
}

func TestNewRequiresRoot(t *testing.T) {
	t.Parallel()

	if _, err := New(""); err == nil {
		t.Fatal("New with empty root succeeded, want error")
	}
}
