package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDocumentLoad is returned when a document cannot be fetched or parsed
	ErrDocumentLoad = errors.New("document load failed")

	// ErrPageExtraction is returned when a page's text or geometry cannot be read
	ErrPageExtraction = errors.New("page extraction failed")

	// ErrConversion is returned when the image-conversion collaborator fails
	ErrConversion = errors.New("image conversion failed")

	// ErrRecognition is returned when the OCR collaborator fails on an image
	ErrRecognition = errors.New("text recognition failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DocumentLoadError represents a document load failure with context
type DocumentLoadError struct {
	URL string
	Err error
}

func (e *DocumentLoadError) Error() string {
	return fmt.Sprintf("loading document %q: %v", e.URL, e.Err)
}

func (e *DocumentLoadError) Is(target error) bool {
	return target == ErrDocumentLoad
}

func (e *DocumentLoadError) Unwrap() error { return e.Err }

// NewDocumentLoadError creates a new DocumentLoadError
func NewDocumentLoadError(url string, err error) *DocumentLoadError {
	return &DocumentLoadError{URL: url, Err: err}
}

// PageExtractionError represents a per-page extraction failure with context
type PageExtractionError struct {
	PageNumber int
	Err        error
}

func (e *PageExtractionError) Error() string {
	return fmt.Sprintf("extracting page %d: %v", e.PageNumber, e.Err)
}

func (e *PageExtractionError) Is(target error) bool {
	return target == ErrPageExtraction
}

func (e *PageExtractionError) Unwrap() error { return e.Err }

// NewPageExtractionError creates a new PageExtractionError
func NewPageExtractionError(pageNumber int, err error) *PageExtractionError {
	return &PageExtractionError{PageNumber: pageNumber, Err: err}
}

// ConversionError represents an image-conversion failure with context.
// StatusCode is the HTTP status returned by the conversion endpoint, or zero
// when the request never completed.
type ConversionError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *ConversionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("converting %q: status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("converting %q: %s", e.URL, e.Message)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// NewConversionError creates a new ConversionError
func NewConversionError(url string, statusCode int, message string) *ConversionError {
	return &ConversionError{URL: url, StatusCode: statusCode, Message: message}
}

// RecognitionError represents an OCR failure for one page image
type RecognitionError struct {
	PageNumber int
	Err        error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognizing page %d: %v", e.PageNumber, e.Err)
}

func (e *RecognitionError) Is(target error) bool {
	return target == ErrRecognition
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// NewRecognitionError creates a new RecognitionError
func NewRecognitionError(pageNumber int, err error) *RecognitionError {
	return &RecognitionError{PageNumber: pageNumber, Err: err}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
