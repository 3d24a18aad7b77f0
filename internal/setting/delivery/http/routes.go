package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /models and /config/validate on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/models", h.Models)
	rg.GET("/config/validate", h.Validate)
}
