package extractor

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/hybridpdf/comparator/internal/errors"
	"github.com/hybridpdf/comparator/internal/logging"
	"github.com/hybridpdf/comparator/internal/ocr"
	"github.com/hybridpdf/comparator/internal/pdf"
)

// Source supplies per-page data for one document.
type Source interface {
	Path() string
	PageCount() int
	PageText(n int) (string, error)
	PageImageCount(n int) int
}

// Renderer rasterizes a single page of the document at path into PNG bytes.
type Renderer interface {
	RenderPage(ctx context.Context, path string, n int) ([]byte, error)
}

// Extractor runs the hybrid extraction pipeline. It is stateless across
// requests; every call owns its own Document.
type Extractor struct {
	engine   ocr.Engine // nil when no OCR backend is configured
	renderer Renderer
	workers  int
	logger   *logging.Logger
}

// New creates an extractor. engine may be nil, in which case OCR-requiring
// pages receive an "OCR unavailable" placeholder. workers > 1 enables
// parallel page fan-out; assembly order is by page number either way.
func New(engine ocr.Engine, renderer Renderer, workers int) *Extractor {
	if workers < 1 {
		workers = 1
	}
	return &Extractor{
		engine:   engine,
		renderer: renderer,
		workers:  workers,
		logger:   logging.NewLogger("Extractor"),
	}
}

// ExtractFile opens the PDF at path and extracts it. filename is the
// client-supplied name recorded on the Document.
func (e *Extractor) ExtractFile(ctx context.Context, path, filename string) (*Document, error) {
	src, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return e.Extract(ctx, src, filename)
}

// Extract processes every page of src and assembles the result.
func (e *Extractor) Extract(ctx context.Context, src Source, filename string) (*Document, error) {
	total := src.PageCount()
	e.logger.Info("processing document", "filename", filename, "pages", total)

	pages := make([]PageRecord, total)

	if e.workers > 1 {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(e.workers)
		for n := 1; n <= total; n++ {
			n := n
			eg.Go(func() error {
				record, err := e.processPage(gctx, src, n)
				if err != nil {
					return err
				}
				pages[n-1] = record
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for n := 1; n <= total; n++ {
			record, err := e.processPage(ctx, src, n)
			if err != nil {
				return nil, err
			}
			pages[n-1] = record
		}
	}

	stats := Stats{TotalPages: total}
	for _, page := range pages {
		stats.record(page.Method)
	}

	doc := &Document{
		Filename: filename,
		Pages:    pages,
		Text:     Assemble(pages, AssembleOptions{}),
		Stats:    stats,
	}

	e.logger.Info("document processed",
		"filename", filename,
		"total", stats.TotalPages,
		"direct", stats.TextExtracted,
		"ocr", stats.OCRUsed,
		"hybrid", stats.Hybrid,
		"empty", stats.Empty)

	return doc, nil
}

// processPage classifies one page and resolves its text. OCR failures are
// page-scoped: they become placeholder text, never an error. A failing text
// layer read is a document-level fault and aborts the run.
func (e *Extractor) processPage(ctx context.Context, src Source, n int) (PageRecord, error) {
	directText, err := src.PageText(n)
	if err != nil {
		return PageRecord{}, err
	}

	hasImages := src.PageImageCount(n) > 0
	method := classify(hasExtractableText(directText), hasImages)

	record := PageRecord{
		PageNumber: n,
		Method:     method,
		HasImages:  hasImages,
	}

	switch method {
	case StrategyDirectText:
		record.Text = directText

	case StrategyOCROnly:
		ocrText, err := e.recognizePage(ctx, src, n)
		if err != nil {
			record.Text = ocrPlaceholder(n, err)
		} else {
			record.Text = ocrText
		}

	case StrategyHybrid:
		ocrText, err := e.recognizePage(ctx, src, n)
		if err != nil {
			record.Text = directText + "\n\n" + ocrPlaceholder(n, err)
		} else {
			record.Text = mergeTextAndOCR(directText, ocrText)
		}

	case StrategyEmpty:
		record.Text = ""
	}

	e.logger.Debug("page classified", "page", n, "method", method)

	return record, nil
}

func (e *Extractor) recognizePage(ctx context.Context, src Source, n int) (string, error) {
	if e.engine == nil {
		return "", apperrors.NewOCRUnavailableError(n)
	}

	image, err := e.renderer.RenderPage(ctx, src.Path(), n)
	if err != nil {
		e.logger.Warn("page rasterization failed", "page", n, "error", err)
		return "", err
	}

	text, err := e.engine.Recognize(ctx, image)
	if err != nil {
		e.logger.Warn("OCR failed", "page", n, "backend", e.engine.Name(), "error", err)
		return "", err
	}
	return text, nil
}

// ocrPlaceholder renders a page-scoped OCR failure as text. This is a
// presentation decision: the OCR call itself reports a structured error.
func ocrPlaceholder(n int, err error) string {
	var pe *apperrors.ProcessingError
	if errors.As(err, &pe) && pe.Code == apperrors.ErrorOCRUnavailable {
		return fmt.Sprintf("[OCR unavailable for page %d]", n)
	}
	return fmt.Sprintf("[OCR failed for page %d: %v]", n, err)
}
