package http

import (
	"strings"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	SessionID string `json:"session_id"`
	Model     string `json:"model"`
	Message   string `json:"message" binding:"required"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{
		SessionID: r.SessionID,
		Model:     r.Model,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type sendResp struct {
	SessionID string `json:"session_id"`
	Model     string `json:"model"`
	Reply     string `json:"reply"`
	Empty     bool   `json:"empty"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		SessionID: out.SessionID,
		Model:     out.Model,
		Reply:     out.Reply,
		Empty:     out.Empty,
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	SessionID   string            `json:"session_id"`
	Model       string            `json:"model"`
	Turns       []turnResp        `json:"turns"`
	LastUpdated response.DateTime `json:"last_updated"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{Role: t.Role, Text: t.Text, CreatedAt: response.DateTime(t.CreatedAt)}
	}
	return historyResp{
		SessionID:   out.SessionID,
		Model:       out.Model,
		Turns:       turns,
		LastUpdated: response.DateTime(out.LastUpdated),
	}
}
