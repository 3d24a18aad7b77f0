package http

import (
	"github.com/gin-gonic/gin"

	"gemini-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every chat route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	{
		rg.POST("", h.Send)
		rg.GET("/:session_id/history", h.History)
		rg.DELETE("/:session_id", h.Reset)
	}
}
