package dispatcher

import (
	"time"

	"gemini-chatbot/internal/model"
)

// Role of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of a conversation owned by the caller.
type Turn struct {
	Role Role
	Text string
}

// Config carries what a dispatcher needs to build its own client.
type Config struct {
	APIKey            string
	Model             string
	APIURL            string
	Backend           string
	Timeout           time.Duration
	SystemInstruction string
	SafetyRules       []model.SafetyRule
}
