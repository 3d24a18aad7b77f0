package http

import (
	"github.com/gin-gonic/gin"

	"gemini-chatbot/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Sends one message to the model. Earlier turns of the session are replayed as context. Omit session_id to start a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Model request failed"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the stored turns of a chat session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/{session_id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("session_id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Reset godoc
// @Summary     Clear a session
// @Description Forgets the session and its history.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, c.Param("session_id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
