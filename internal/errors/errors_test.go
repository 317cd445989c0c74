package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"document load", NewDocumentLoadError("file.pdf", errors.New("boom")), ErrDocumentLoad},
		{"page extraction", NewPageExtractionError(3, errors.New("boom")), ErrPageExtraction},
		{"conversion", NewConversionError("file.pdf", 500, "renderer crashed"), ErrConversion},
		{"recognition", NewRecognitionError(2, errors.New("boom")), ErrRecognition},
		{"validation", NewValidationError("pdfUrl", "is required"), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("search page: %w", NewRecognitionError(4, errors.New("tesseract exited")))
	if !errors.Is(err, ErrRecognition) {
		t.Error("wrapped RecognitionError no longer matches ErrRecognition")
	}

	var recErr *RecognitionError
	if !errors.As(err, &recErr) {
		t.Fatal("errors.As failed to extract *RecognitionError")
	}
	if recErr.PageNumber != 4 {
		t.Errorf("PageNumber = %d, want 4", recErr.PageNumber)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDocumentLoadError("http://example.com/doc.pdf", cause)
	if !errors.Is(err, cause) {
		t.Error("DocumentLoadError does not unwrap to its cause")
	}
}

func TestValidationErrorMessages(t *testing.T) {
	withField := NewValidationError("keywords", "must not contain empty strings")
	if got := withField.Error(); got != "validation error for field 'keywords': must not contain empty strings" {
		t.Errorf("Error() = %q", got)
	}

	withoutField := NewValidationError("", "request body is not valid JSON")
	if got := withoutField.Error(); got != "validation error: request body is not valid JSON" {
		t.Errorf("Error() = %q", got)
	}
}
