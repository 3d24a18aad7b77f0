package http

import (
	"github.com/gin-gonic/gin"

	"gemini-chatbot/pkg/response"
)

// Models godoc
// @Summary     List available models
// @Description Returns the compiled-in model catalog and the default model.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, h.newModelsResp())
}

// Validate godoc
// @Summary     Validate configuration
// @Description Reports every configuration issue found. Always answers 200; check the valid flag.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} setting.ValidationResult
// @Router      /api/v1/config/validate [GET]
func (h *handler) Validate(c *gin.Context) {
	result := h.settings.Validate()
	if !result.Valid {
		h.l.Warnf(c.Request.Context(), "internal.setting.delivery.http.Validate: %d issue(s): %v", len(result.Issues), result.Issues)
	}
	response.OK(c, result)
}
