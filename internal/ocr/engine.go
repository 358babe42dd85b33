// Package ocr defines the OCR engine interface and its backends.
package ocr

import (
	"context"
	"fmt"
)

// Engine converts a rasterized page image into recognized text.
//
// Implementations return a *TranscriptionError when recognition fails, so
// callers can distinguish transcription failures (recovered per page) from
// programming errors.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	Name() string
}

// TranscriptionError is a failed recognition attempt.
type TranscriptionError struct {
	Backend string
	Cause   error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s transcription failed: %v", e.Backend, e.Cause)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}
