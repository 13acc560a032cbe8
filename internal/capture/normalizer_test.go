package capture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/docflowhq/docflow/internal/common"
)

type stubTextReader struct {
	text  string
	pages int
	err   error
}

func (s stubTextReader) ReadText(data []byte, maxPages int) (string, int, error) {
	return s.text, s.pages, s.err
}

type stubRasterizer struct {
	img    image.Image
	err    error
	called bool
}

func (s *stubRasterizer) RasterizePage(data []byte, page int, scale float64, maxDim int) (image.Image, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x ^ y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeImagePassthrough(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(Config{MinCompressBytes: 1024}, stubTextReader{}, &stubRasterizer{}, nil)
	data := []byte("tiny-but-valid-enough")

	got, err := n.Normalize(context.Background(), "scan.png", data)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Method != "image-passthrough" {
		t.Fatalf("method = %q, want image-passthrough", got.Method)
	}
	if !bytes.Equal(got.ImageData, data) {
		t.Fatal("passthrough payload must be byte-identical to the input")
	}
	if got.ContentType != "image/png" {
		t.Fatalf("content type = %q, want image/png", got.ContentType)
	}
	if got.IsPDF {
		t.Fatal("image payload flagged as PDF")
	}
}

func TestNormalizeImageCompressBoundsDimensions(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(Config{
		MinCompressBytes: 16,
		MaxPixelDim:      64,
		TargetImageBytes: 1024 * 1024,
	}, stubTextReader{}, &stubRasterizer{}, nil)

	got, err := n.Normalize(context.Background(), "big.png", encodePNG(t, 200, 50))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Method != "image-compress" {
		t.Fatalf("method = %q, want image-compress", got.Method)
	}
	if got.ContentType != "image/jpeg" {
		t.Fatalf("content type = %q, want image/jpeg", got.ContentType)
	}

	out, _, err := image.Decode(bytes.NewReader(got.ImageData))
	if err != nil {
		t.Fatalf("decode compressed payload: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 64 || b.Dy() != 16 {
		t.Fatalf("compressed dimensions = %dx%d, want 64x16", b.Dx(), b.Dy())
	}
}

func TestNormalizeRejectsUnsupportedAndEmpty(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(Config{}, stubTextReader{}, &stubRasterizer{}, nil)

	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{name: "unsupported extension", filename: "notes.docx", data: []byte("x")},
		{name: "no extension", filename: "README", data: []byte("x")},
		{name: "empty file", filename: "scan.jpg", data: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := n.Normalize(context.Background(), tt.filename, tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, common.ErrCapture) {
				t.Fatalf("error %v is not a capture error", err)
			}
		})
	}
}

func TestNormalizePDFTextFastPath(t *testing.T) {
	t.Parallel()

	raster := &stubRasterizer{}
	n := NewNormalizer(Config{MinTextChars: 10}, stubTextReader{text: strings.Repeat("invoice ", 20), pages: 3}, raster, nil)

	got, err := n.Normalize(context.Background(), "invoice.pdf", []byte("%PDF-1.7"))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Method != "pdf-text" {
		t.Fatalf("method = %q, want pdf-text", got.Method)
	}
	if !got.IsPDF {
		t.Fatal("text-path PDF must keep IsPDF=true")
	}
	if got.Pages != 3 {
		t.Fatalf("pages = %d, want 3", got.Pages)
	}
	if got.Text == "" || got.ImageData != nil {
		t.Fatal("text path must carry text and no image data")
	}
	if raster.called {
		t.Fatal("rasterizer must not run when the text layer suffices")
	}
}

func TestNormalizePDFRasterFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		reader stubTextReader
	}{
		{name: "text below threshold", reader: stubTextReader{text: "  hi  ", pages: 1}},
		{name: "parse error treated as no text", reader: stubTextReader{err: errors.New("xref broken")}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raster := &stubRasterizer{img: image.NewRGBA(image.Rect(0, 0, 40, 40))}
			n := NewNormalizer(Config{MinTextChars: 10}, tt.reader, raster, nil)

			got, err := n.Normalize(context.Background(), "scan.pdf", []byte("%PDF-1.7"))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got.Method != "pdf-raster" {
				t.Fatalf("method = %q, want pdf-raster", got.Method)
			}
			if got.IsPDF {
				t.Fatal("rasterized PDF must be flagged as an image payload")
			}
			if len(got.ImageData) == 0 {
				t.Fatal("raster fallback produced no image data")
			}
			if got.Pages != 1 {
				t.Fatalf("pages = %d, want 1", got.Pages)
			}
			if !raster.called {
				t.Fatal("rasterizer was not invoked")
			}
		})
	}
}

func TestNormalizePDFRasterFailureIsTerminal(t *testing.T) {
	t.Parallel()

	raster := &stubRasterizer{err: errors.New("corrupt page tree")}
	n := NewNormalizer(Config{MinTextChars: 10}, stubTextReader{}, raster, nil)

	_, err := n.Normalize(context.Background(), "bad.pdf", []byte("%PDF-1.7"))
	if err == nil {
		t.Fatal("expected error when both text and raster paths fail")
	}
	if !errors.Is(err, common.ErrCapture) {
		t.Fatalf("error %v is not a capture error", err)
	}
}
