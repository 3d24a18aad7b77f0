package chat

import "time"

// Turn is one stored message of a session.
type Turn struct {
	Role      string
	Text      string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type SendInput struct {
	// SessionID is optional; an empty or expired id starts a new session.
	SessionID string
	// Model is optional; empty keeps the session's model.
	Model   string
	Message string
}

// --- UseCase Outputs ---

type SendOutput struct {
	SessionID string
	Model     string
	Reply     string
	// Empty is set when the model answered successfully with no text.
	Empty bool
}

type HistoryOutput struct {
	SessionID   string
	Model       string
	Turns       []Turn
	LastUpdated time.Time
}
