package capture

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

const baseDPI = 72.0

// FitzRasterizer renders PDF pages with MuPDF via github.com/gen2brain/go-fitz.
type FitzRasterizer struct{}

func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{}
}

// RasterizePage renders the given page (0-indexed) at scale, reducing the
// scale when needed so the longest edge stays within maxDim pixels.
func (r *FitzRasterizer) RasterizePage(data []byte, page int, scale float64, maxDim int) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf for raster: %w", err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (%d pages)", page, doc.NumPage())
	}

	bound, err := doc.Bound(page)
	if err != nil {
		return nil, fmt.Errorf("page %d bounds: %w", page, err)
	}
	longest := bound.Dx()
	if bound.Dy() > longest {
		longest = bound.Dy()
	}
	if longest > 0 && float64(longest)*scale > float64(maxDim) {
		scale = float64(maxDim) / float64(longest)
	}

	img, err := doc.ImageDPI(page, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page, err)
	}
	return img, nil
}
