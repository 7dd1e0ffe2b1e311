// Package extract turns uploaded documents into plain text for the
// generation pipeline.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentParse is returned when the uploaded document cannot be opened
// as a PDF at all. Per-page extraction problems never produce it; bad pages
// are skipped instead.
var ErrDocumentParse = errors.New("cannot parse document")

// Result holds the text pulled out of a document.
type Result struct {
	// Text is the concatenation of all non-empty page texts, in page order,
	// joined with a single newline.
	Text string
	// PageCount is the total number of pages in the document.
	PageCount int
	// PagesSkipped counts pages that contributed no text, either because
	// they were empty or because their extraction failed.
	PagesSkipped int
}

// Extractor extracts plain text from an uploaded document.
type Extractor interface {
	Extract(ctx context.Context, r io.ReaderAt, size int64) (*Result, error)
}

// PDFExtractor extracts text from PDF documents page by page.
type PDFExtractor struct{}

// NewPDFExtractor constructs a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

var _ Extractor = (*PDFExtractor)(nil)

// Extract reads every page of the PDF in order. Pages that are empty or fail
// to yield text are skipped; only a document that cannot be opened is an
// error.
func (e *PDFExtractor) Extract(ctx context.Context, r io.ReaderAt, size int64) (*Result, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrDocumentParse)
	}

	reader, err := openPDF(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	res := &Result{PageCount: reader.NumPage()}
	pages := make([]string, 0, res.PageCount)
	for i := 1; i <= res.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := pageText(reader, i)
		if err != nil || text == "" {
			res.PagesSkipped++
			continue
		}
		pages = append(pages, text)
	}

	res.Text = strings.Join(pages, "\n")
	return res, nil
}

// openPDF opens the document. The pdf package panics on some malformed
// inputs instead of returning an error; those count as parse failures.
func openPDF(r io.ReaderAt, size int64) (reader *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			reader = nil
			err = fmt.Errorf("open pdf: %v", p)
		}
	}()
	return pdf.NewReader(r, size)
}

// pageText extracts the text of a single page, shielding callers from the
// pdf package's panics the same way openPDF does.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", num, p)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
