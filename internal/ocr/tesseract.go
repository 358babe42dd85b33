package ocr

import (
	"context"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/hybridpdf/comparator/internal/logging"
)

// Tesseract performs local OCR using the Tesseract engine.
type Tesseract struct {
	languages []string
	logger    *logging.Logger
}

// NewTesseract creates a Tesseract backend. langs is a comma-separated list
// of language codes ("fra,eng"); empty means Tesseract's default.
func NewTesseract(langs string) *Tesseract {
	var languages []string
	for _, l := range strings.Split(langs, ",") {
		if l = strings.TrimSpace(l); l != "" {
			languages = append(languages, l)
		}
	}

	return &Tesseract{
		languages: languages,
		logger:    logging.NewLogger("Tesseract"),
	}
}

// Name returns the backend name.
func (t *Tesseract) Name() string {
	return "tesseract"
}

// Recognize runs Tesseract on a PNG image.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	start := time.Now()

	client := gosseract.NewClient()
	defer client.Close()

	if len(t.languages) > 0 {
		if err := client.SetLanguage(t.languages...); err != nil {
			return "", &TranscriptionError{Backend: t.Name(), Cause: err}
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", &TranscriptionError{Backend: t.Name(), Cause: err}
	}

	text, err := client.Text()
	if err != nil {
		return "", &TranscriptionError{Backend: t.Name(), Cause: err}
	}

	t.logger.Debug("recognition complete",
		"chars", len(text), "duration", time.Since(start))

	return text, nil
}
