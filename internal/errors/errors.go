// Package errors defines the structured error types used across the service.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode enum for structured error handling
type ErrorCode string

const (
	// Input validation errors (request-fatal, HTTP 400)
	ErrorInvalidInput ErrorCode = "INVALID_INPUT"

	// Document-level processing errors (request-fatal, HTTP 500)
	ErrorParseFailed ErrorCode = "PARSE_FAILED"

	// Page-level OCR errors (recovered locally, never request-fatal)
	ErrorOCRFailed      ErrorCode = "OCR_FAILED"
	ErrorOCRUnavailable ErrorCode = "OCR_UNAVAILABLE"
	ErrorRenderFailed   ErrorCode = "RENDER_FAILED"
)

// ProcessingError represents a structured processing error
type ProcessingError struct {
	Code      ErrorCode
	Message   string
	Page      int // 1-based page number for page-scoped errors, 0 otherwise
	Timestamp time.Time
	Cause     error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// Factory functions for common errors

func NewInvalidInputError(detail string) *ProcessingError {
	return &ProcessingError{
		Code:      ErrorInvalidInput,
		Message:   detail,
		Timestamp: time.Now(),
	}
}

func NewParseFailedError(filename string, cause error) *ProcessingError {
	return &ProcessingError{
		Code:      ErrorParseFailed,
		Message:   fmt.Sprintf("Failed to parse PDF: %s", filename),
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

func NewOCRFailedError(page int, cause error) *ProcessingError {
	return &ProcessingError{
		Code:      ErrorOCRFailed,
		Message:   fmt.Sprintf("OCR failed for page %d", page),
		Page:      page,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

func NewOCRUnavailableError(page int) *ProcessingError {
	return &ProcessingError{
		Code:      ErrorOCRUnavailable,
		Message:   fmt.Sprintf("No OCR backend configured for page %d", page),
		Page:      page,
		Timestamp: time.Now(),
	}
}

func NewRenderFailedError(page int, cause error) *ProcessingError {
	return &ProcessingError{
		Code:      ErrorRenderFailed,
		Message:   fmt.Sprintf("Failed to rasterize page %d", page),
		Page:      page,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	var pe *ProcessingError
	return errors.As(err, &pe) && pe.Code == ErrorInvalidInput
}
