package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// NewHTTPErrorf is NewHTTPError with a format string.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return NewHTTPError(statusCode, fmt.Sprintf(format, args...))
}
