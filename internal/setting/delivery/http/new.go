package http

import (
	"github.com/gin-gonic/gin"

	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

// Handler exposes the model catalog and the configuration check.
type Handler interface {
	Models(c *gin.Context)
	Validate(c *gin.Context)
}

type handler struct {
	l        log.Logger
	settings setting.Settings
}

var _ Handler = (*handler)(nil)

func New(l log.Logger, settings setting.Settings) *handler {
	return &handler{
		l:        l,
		settings: settings,
	}
}
