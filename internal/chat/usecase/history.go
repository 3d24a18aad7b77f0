package usecase

import (
	"context"

	"gemini-chatbot/internal/chat"
)

// History returns a copy of the session's turns.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return chat.HistoryOutput{
		SessionID:   s.id,
		Model:       s.model,
		Turns:       append([]chat.Turn(nil), s.turns...),
		LastUpdated: s.lastUpdated,
	}, nil
}

// Reset forgets the session.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	if !uc.sessions.Remove(sessionID) {
		return chat.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "%s: cleared session %s", LogPrefixReset, sessionID)
	return nil
}
