package common

import (
	"errors"
	"net/http"
)

// ErrorResponse API error body
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // only filled in debug mode
}

// CustomError error carrying an API code and HTTP status
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped error
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithErr returns a copy of e wrapping err
func (e *CustomError) WithErr(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// WithMessage returns a copy of e with a caller-facing message
func (e *CustomError) WithMessage(message string) *CustomError {
	return NewError(e.Code, message, e.Status, e.Err)
}

// Response builds the JSON body, details only when debug is set
func (e *CustomError) Response(debug bool) ErrorResponse {
	resp := ErrorResponse{Code: e.Code, Message: e.Message}
	if debug && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}

// NewError creates a CustomError
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError invalid user input
type ValidationError struct {
	message string
}

// Error implements error
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a ValidationError
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

const (
	// client errors (4xx)
	ErrCodeInvalidRequest      = "INVALID_REQUEST"       // 400
	ErrCodeInvalidMultiplier   = "INVALID_MULTIPLIER"    // 400
	ErrCodeInvalidPricingInput = "INVALID_PRICING_INPUT" // 400
	ErrCodeNotFound            = "NOT_FOUND"             // 404
	ErrCodeRequestTooLarge     = "REQUEST_TOO_LARGE"     // 413
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"     // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

var (
	ErrInvalidRequest      = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrInvalidMultiplier   = NewError(ErrCodeInvalidMultiplier, "multiplier out of range", http.StatusBadRequest, nil)
	ErrInvalidPricingInput = NewError(ErrCodeInvalidPricingInput, "invalid pricing input", http.StatusBadRequest, nil)
	ErrNotFound            = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrRequestTooLarge     = NewError(ErrCodeRequestTooLarge, "request body too large", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests     = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service unavailable", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "request timeout", http.StatusGatewayTimeout, nil)

	// cache
	ErrCacheFull = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
	ErrCacheMiss = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
)
