package capture

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFTextReader reads PDF text layers with github.com/ledongthuc/pdf.
type PDFTextReader struct{}

func NewPDFTextReader() *PDFTextReader {
	return &PDFTextReader{}
}

// ReadText concatenates the text layers of the first maxPages pages. The
// reader panics on some malformed files, so parsing is fenced and reported
// as an error; the normalizer treats any error here as "no text layer".
func (r *PDFTextReader) ReadText(data []byte, maxPages int) (text string, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, pages = "", 0
			err = fmt.Errorf("pdf parse panic: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	n := total
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("page %d text: %w", i, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), n, nil
}
