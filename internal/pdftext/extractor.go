// Package pdftext is the boundary to PDF text extraction. The statement
// engine consumes ordered per-page text blobs; this package produces them
// from a PDF file and knows nothing about their content.
package pdftext

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor produces the ordered per-page texts of a document. The engine
// depends on this interface so tests can feed synthetic pages directly.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// PDFExtractor extracts text with the ledongthuc/pdf library.
type PDFExtractor struct{}

// New returns a library-backed extractor.
func New() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages returns the plain text of every page in document order.
// The library panics on some malformed documents, so extraction is wrapped
// in a recover.
func (e *PDFExtractor) ExtractPages(path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("PDF extraction failed for %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			return nil, fmt.Errorf("error extracting text from page %d of %s: %w", i, path, perr)
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text could be extracted from %s", path)
	}
	return pages, nil
}

// StaticExtractor serves fixed page texts; used in tests and for already
// extracted input.
type StaticExtractor struct {
	Pages []string
	Err   error
}

// ExtractPages returns the configured pages regardless of path.
func (s *StaticExtractor) ExtractPages(string) ([]string, error) {
	return s.Pages, s.Err
}
