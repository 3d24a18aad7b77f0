package usecase

import (
	"context"
	"fmt"
	"strings"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/dispatcher"
)

// Send dispatches input.Message within its session. Failed or empty replies
// leave the session history untouched.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}
	if input.Model != "" && !uc.settings.HasModel(input.Model) {
		return chat.SendOutput{}, chat.ErrUnknownModel
	}

	s := uc.getOrCreate(input.SessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Model != "" {
		s.model = input.Model
	}

	d, err := uc.dispatcherFor(s.model)
	if err != nil {
		uc.l.Errorf(ctx, "%s: dispatcherFor %s: %v", LogPrefixSend, s.model, err)
		return chat.SendOutput{}, fmt.Errorf("%w: %v", chat.ErrDispatchFailed, err)
	}

	if err := s.pacer.Wait(ctx); err != nil {
		uc.l.Warnf(ctx, "%s: session=%s: pacing: %v", LogPrefixSend, s.id, err)
		return chat.SendOutput{}, fmt.Errorf("%w: %w", chat.ErrRequestAborted, err)
	}

	reply, err := d.Converse(ctx, s.history(), message)
	if err != nil {
		uc.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixSend, s.id, err)
		return chat.SendOutput{}, fmt.Errorf("%w: %w", chat.ErrDispatchFailed, err)
	}

	out := chat.SendOutput{SessionID: s.id, Model: s.model, Reply: reply}
	if reply == "" {
		out.Empty = true
		uc.l.Warnf(ctx, "%s: session=%s: empty reply", LogPrefixSend, s.id)
		return out, nil
	}

	s.appendExchange(message, reply, uc.cfg.MaxHistory)
	uc.touch(s)
	return out, nil
}

// dispatcherFor builds dispatchers lazily and reuses them across sessions.
func (uc *implUseCase) dispatcherFor(modelID string) (dispatcher.Dispatcher, error) {
	uc.dispatchersMu.Lock()
	defer uc.dispatchersMu.Unlock()

	if d, ok := uc.dispatchers[modelID]; ok {
		return d, nil
	}
	d, err := uc.factory(modelID)
	if err != nil {
		return nil, err
	}
	uc.dispatchers[modelID] = d
	return d, nil
}
