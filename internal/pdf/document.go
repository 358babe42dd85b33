// Package pdf provides page-level access to a PDF file: extractable text,
// embedded image inventory and rasterization for OCR.
//
// Text extraction uses ledongthuc/pdf (pure Go, no CGO). Structural
// validation and the authoritative page count come from pdfcpu.
package pdf

import (
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	apperrors "github.com/hybridpdf/comparator/internal/errors"
)

// Document provides per-page access to an open PDF file.
type Document struct {
	path      string
	file      *os.File
	reader    *pdf.Reader
	pageCount int
}

// Open opens and validates a PDF file. The caller must Close it.
func Open(path string) (*Document, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return nil, apperrors.NewParseFailedError(path, err)
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, apperrors.NewParseFailedError(path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, apperrors.NewParseFailedError(path, err)
	}

	return &Document{
		path:      path,
		file:      f,
		reader:    reader,
		pageCount: pageCount,
	}, nil
}

// Path returns the on-disk location of the document.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// PageText returns the extractable text of the 1-based page n.
// Pages without a readable text layer yield an empty string, not an error.
func (d *Document) PageText(n int) (string, error) {
	if n < 1 || n > d.reader.NumPage() {
		return "", nil
	}

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		// An unreadable text layer is not a document error; the page may
		// still carry images and go through OCR.
		return "", nil
	}

	return text, nil
}

// PageImageCount returns the number of embedded image XObjects on the
// 1-based page n.
func (d *Document) PageImageCount(n int) int {
	if n < 1 || n > d.reader.NumPage() {
		return 0
	}

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return 0
	}

	xobjects := page.V.Key("Resources").Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return 0
	}

	count := 0
	for _, name := range xobjects.Keys() {
		obj := xobjects.Key(name)
		if strings.EqualFold(obj.Key("Subtype").Name(), "Image") {
			count++
		}
	}
	return count
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}
