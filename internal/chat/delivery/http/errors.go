package http

import (
	"errors"
	"net/http"

	"gemini-chatbot/internal/chat"
	pkgErrors "gemini-chatbot/pkg/errors"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errEmptyMessage = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
)

// mapError translates chat use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrUnknownModel):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrDispatchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, chat.ErrRequestAborted):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, chat.ErrRequestAborted.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
