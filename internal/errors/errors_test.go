package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestProcessingErrorFormat(t *testing.T) {
	pe := NewInvalidInputError("Only PDF files are allowed")
	if got := pe.Error(); got != "INVALID_INPUT: Only PDF files are allowed" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("unexpected EOF")
	pe = NewParseFailedError("broken.pdf", cause)
	got := pe.Error()
	if !strings.Contains(got, "PARSE_FAILED") || !strings.Contains(got, "unexpected EOF") {
		t.Errorf("Error() = %q, want code and cause", got)
	}
}

func TestProcessingErrorUnwrap(t *testing.T) {
	cause := errors.New("tesseract exited 1")
	pe := NewOCRFailedError(3, cause)

	if pe.Page != 3 {
		t.Errorf("Page = %d, want 3", pe.Page)
	}
	if !errors.Is(pe, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestOCRUnavailableError(t *testing.T) {
	pe := NewOCRUnavailableError(2)
	if pe.Code != ErrorOCRUnavailable {
		t.Errorf("Code = %q, want %q", pe.Code, ErrorOCRUnavailable)
	}
	if pe.Page != 2 {
		t.Errorf("Page = %d, want 2", pe.Page)
	}
	if !strings.Contains(pe.Error(), "OCR_UNAVAILABLE") {
		t.Errorf("Error() = %q, want code included", pe.Error())
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(NewInvalidInputError("bad form")) {
		t.Error("IsInvalidInput = false for an invalid-input error")
	}
	if !IsInvalidInput(fmt.Errorf("wrapped: %w", NewInvalidInputError("bad form"))) {
		t.Error("IsInvalidInput should see through wrapping")
	}
	if IsInvalidInput(NewParseFailedError("a.pdf", nil)) {
		t.Error("IsInvalidInput = true for a parse failure")
	}
	if IsInvalidInput(errors.New("plain")) {
		t.Error("IsInvalidInput = true for a plain error")
	}
}
