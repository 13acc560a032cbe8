package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register decoders for image.Decode
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/common"
)

// Payload is the submission-ready form of one capture: either a size-bounded
// image or the extracted text of a PDF. A rasterized PDF carries IsPDF=false
// so the extraction job treats it as an image.
type Payload struct {
	Filename    string
	ContentType string
	IsPDF       bool
	Text        string // PDF fast path only
	ImageData   []byte // image path and raster fallback
	Pages       int
	Method      string // "image-passthrough" | "image-compress" | "pdf-text" | "pdf-raster"
}

// PageTextReader extracts the text layers of the first maxPages pages.
type PageTextReader interface {
	ReadText(data []byte, maxPages int) (text string, pages int, err error)
}

// PageRasterizer renders one page (0-indexed) to an image. The longest edge
// of the result must not exceed maxDim.
type PageRasterizer interface {
	RasterizePage(data []byte, page int, scale float64, maxDim int) (image.Image, error)
}

type Config struct {
	MinCompressBytes int
	MaxPixelDim      int
	TargetImageBytes int
	MaxTextPages     int
	MinTextChars     int
	RasterScale      float64
}

type Normalizer struct {
	cfg     Config
	pdfText PageTextReader
	raster  PageRasterizer
	logger  *slog.Logger
}

func NewNormalizer(cfg Config, pdfText PageTextReader, raster PageRasterizer, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinCompressBytes <= 0 {
		cfg.MinCompressBytes = 100 * 1024
	}
	if cfg.MaxPixelDim <= 0 {
		cfg.MaxPixelDim = 2048
	}
	if cfg.TargetImageBytes <= 0 {
		cfg.TargetImageBytes = 1024 * 1024
	}
	if cfg.MaxTextPages <= 0 {
		cfg.MaxTextPages = 5
	}
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 10
	}
	if cfg.RasterScale <= 0 {
		cfg.RasterScale = 2.0
	}
	return &Normalizer{cfg: cfg, pdfText: pdfText, raster: raster, logger: logger}
}

// Normalize converts one raw capture into a submission-ready payload.
// Failures are terminal for this file only; a multi-file submission keeps
// going with its remaining files.
func (n *Normalizer) Normalize(ctx context.Context, filename string, data []byte) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, common.CaptureError(filename, fmt.Errorf("empty file"))
	}

	switch constants.MapExtToFormat(filepath.Ext(filename)) {
	case constants.IMAGE:
		return n.normalizeImage(filename, data)
	case constants.PDF:
		return n.normalizePDF(filename, data)
	default:
		return nil, common.CaptureError(filename, fmt.Errorf("unsupported extension %q", filepath.Ext(filename)))
	}
}

// normalizeImage returns small captures unchanged; re-compressing them
// wastes work and may grow the file. Larger captures are downscaled to the
// pixel bound and re-encoded toward the byte target.
func (n *Normalizer) normalizeImage(filename string, data []byte) (*Payload, error) {
	if len(data) <= n.cfg.MinCompressBytes {
		n.logger.Debug("capture below compression threshold, passing through", "filename", filename, "bytes", len(data))
		return &Payload{
			Filename:    filename,
			ContentType: contentTypeForExt(filename),
			ImageData:   data,
			Method:      "image-passthrough",
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, common.CaptureError(filename, fmt.Errorf("decode image: %w", err))
	}

	img = downscale(img, n.cfg.MaxPixelDim)
	out, err := encodeJPEGToTarget(img, n.cfg.TargetImageBytes)
	if err != nil {
		return nil, common.CaptureError(filename, err)
	}

	n.logger.Info("image capture compressed",
		"filename", filename,
		"in_bytes", len(data),
		"out_bytes", len(out),
	)
	return &Payload{
		Filename:    filename,
		ContentType: "image/jpeg",
		ImageData:   out,
		Method:      "image-compress",
	}, nil
}

// normalizePDF tries the text layer of the first MaxTextPages pages. A parse
// error on this fast path counts as "insufficient text", not as a failure.
// Scanned PDFs fall back to a rasterized page 1 flagged as a non-PDF payload.
func (n *Normalizer) normalizePDF(filename string, data []byte) (*Payload, error) {
	text, pages, err := n.pdfText.ReadText(data, n.cfg.MaxTextPages)
	if err != nil {
		n.logger.Warn("pdf text layer unreadable, falling back to raster", "filename", filename, "error", err)
		text = ""
	}

	if len(strings.TrimSpace(text)) >= n.cfg.MinTextChars {
		return &Payload{
			Filename:    filename,
			ContentType: "application/pdf",
			IsPDF:       true,
			Text:        text,
			Pages:       pages,
			Method:      "pdf-text",
		}, nil
	}

	n.logger.Info("pdf has no usable text layer, rasterizing page 1",
		"filename", filename,
		"text_chars", len(strings.TrimSpace(text)),
	)
	img, err := n.raster.RasterizePage(data, 0, n.cfg.RasterScale, n.cfg.MaxPixelDim)
	if err != nil {
		return nil, common.CaptureError(filename, fmt.Errorf("rasterize page 1: %w", err))
	}
	out, err := encodeJPEGToTarget(img, n.cfg.TargetImageBytes)
	if err != nil {
		return nil, common.CaptureError(filename, err)
	}

	return &Payload{
		Filename:    filename,
		ContentType: "image/jpeg",
		IsPDF:       false, // downstream treats the raster as an image
		ImageData:   out,
		Pages:       1,
		Method:      "pdf-raster",
	}, nil
}

// downscale caps the longest edge at maxDim, preserving aspect ratio.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxDim {
		return img
	}
	ratio := float64(maxDim) / float64(longest)
	nw := int(float64(w) * ratio)
	nh := int(float64(h) * ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// encodeJPEGToTarget re-encodes with stepwise lower quality until the result
// fits the byte target or quality bottoms out. The last attempt is returned
// even when it still exceeds the target.
func encodeJPEGToTarget(img image.Image, targetBytes int) ([]byte, error) {
	var buf bytes.Buffer
	for quality := 85; ; quality -= 10 {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		if buf.Len() <= targetBytes || quality <= 45 {
			break
		}
	}
	return buf.Bytes(), nil
}

func contentTypeForExt(filename string) string {
	switch constants.NormalizeExt(filepath.Ext(filename)) {
	case "png":
		return "image/png"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}
