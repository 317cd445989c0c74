package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON    ErrorCode = "INVALID_JSON"

	// Server Error Codes (5xx)
	ErrorCodeConversionFailed ErrorCode = "CONVERSION_FAILED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError is the standardized error response. The message lives in the
// "error" field; conversion clients read exactly that field.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, &APIError{
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	})
}
