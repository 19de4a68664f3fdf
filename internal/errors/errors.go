package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Predefined error types for common scenarios
var (
	// 400 Bad Request
	ErrInvalidRequest = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrMissingFile    = New(http.StatusBadRequest, "MISSING_FILE", "파일이 제공되지 않았습니다.")
	ErrEmptyInput     = New(http.StatusBadRequest, "EMPTY_INPUT", "유효한 데이터를 찾을 수 없습니다.")
	ErrEmptyAfterFilter = New(http.StatusBadRequest, "EMPTY_AFTER_FILTER",
		"변환된 데이터가 없습니다. 허용된 2차 사업소 데이터가 없을 수 있습니다.")

	// 405 Method Not Allowed
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed. Use POST.")

	// 500 Internal Server Error
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// ErrValidation creates a validation error with field details
func ErrValidation(field, message string) *APIError {
	return New(http.StatusBadRequest, "VALIDATION_FAILED", field+": "+message)
}

// ServerError creates an internal error carrying the underlying message,
// matching the legacy "서버 오류: <detail>" response text.
func ServerError(err error) *APIError {
	return New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "서버 오류: "+err.Error())
}

// ErrorResponse represents the standard failure response shape
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse creates a new error response from an APIError
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err.Message,
	}
}

// WriteError writes an error response to the HTTP response writer
func WriteError(w http.ResponseWriter, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(NewErrorResponse(err))
}
