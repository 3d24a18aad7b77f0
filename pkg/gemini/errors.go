package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey  = errors.New("gemini: API key is required")
	ErrMissingModel   = errors.New("gemini: model is required")
	ErrUnknownBackend = errors.New("gemini: unknown backend")
	ErrPromptBlocked  = errors.New("gemini: prompt blocked")
)

// APIError is a non-200 answer from the REST endpoint.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
