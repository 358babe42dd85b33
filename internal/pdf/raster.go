package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	apperrors "github.com/hybridpdf/comparator/internal/errors"
	"github.com/hybridpdf/comparator/internal/logging"
)

// Rasterizer converts single PDF pages into PNG images for OCR.
//
// Tesseract cannot read PDFs directly, so pages are rendered with
// pdftoppm (Poppler) when available, falling back to ImageMagick.
type Rasterizer struct {
	dpi    int
	logger *logging.Logger
}

// NewRasterizer creates a rasterizer rendering at the given DPI.
func NewRasterizer(dpi int) *Rasterizer {
	return &Rasterizer{
		dpi:    dpi,
		logger: logging.NewLogger("Rasterizer"),
	}
}

// RenderPage renders the 1-based page n of the PDF at path to PNG bytes.
// Intermediate files live in a call-unique temp directory that is always
// removed.
func (r *Rasterizer) RenderPage(ctx context.Context, path string, n int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "pdfcompare-raster-*")
	if err != nil {
		return nil, apperrors.NewRenderFailedError(n, err)
	}
	defer os.RemoveAll(tmpDir)

	outPath, err := r.renderToFile(ctx, path, n, tmpDir)
	if err != nil {
		return nil, apperrors.NewRenderFailedError(n, err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, apperrors.NewRenderFailedError(n, err)
	}
	return data, nil
}

func (r *Rasterizer) renderToFile(ctx context.Context, path string, n int, tmpDir string) (string, error) {
	page := fmt.Sprintf("%d", n)
	prefix := filepath.Join(tmpDir, "page")

	// pdftoppm first: best quality, fastest.
	if _, err := exec.LookPath("pdftoppm"); err == nil {
		cmd := exec.CommandContext(ctx, "pdftoppm",
			"-png", "-r", fmt.Sprintf("%d", r.dpi),
			"-f", page, "-l", page, "-singlefile",
			path, prefix)
		if out, err := cmd.CombinedOutput(); err != nil {
			r.logger.Warn("pdftoppm failed, trying ImageMagick",
				"page", n, "error", err, "output", string(out))
		} else {
			return prefix + ".png", nil
		}
	}

	// ImageMagick fallback. Page selection is zero-based here.
	if magick, err := exec.LookPath("magick"); err == nil {
		outPath := filepath.Join(tmpDir, "page.png")
		cmd := exec.CommandContext(ctx, magick,
			"-density", fmt.Sprintf("%d", r.dpi),
			fmt.Sprintf("%s[%d]", path, n-1), outPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			return "", fmt.Errorf("magick convert failed: %w (%s)", err, string(out))
		}
		return outPath, nil
	}

	return "", fmt.Errorf("no PDF rasterizer available: install Poppler (pdftoppm) or ImageMagick (magick)")
}
