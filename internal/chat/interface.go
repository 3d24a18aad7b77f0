package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Send dispatches one message within a session, replaying the session's
	// earlier turns as context.
	Send(ctx context.Context, input SendInput) (SendOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	Reset(ctx context.Context, sessionID string) error
}
