package chat

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrUnknownModel    = errors.New("model not in available models")
	ErrSessionNotFound = errors.New("session not found")
	ErrDispatchFailed  = errors.New("model request failed")
	ErrRequestAborted  = errors.New("request aborted before dispatch")
)
