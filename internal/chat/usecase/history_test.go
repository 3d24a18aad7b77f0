package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gemini-chatbot/internal/chat"
)

func TestHistoryAndReset(t *testing.T) {
	uc, _ := newTestUseCase(Config{}, "echo", nil)
	ctx := context.Background()

	out, _ := uc.Send(ctx, chat.SendInput{Message: "hello"})

	hist, err := uc.History(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.Turns) != 2 || hist.Turns[1].Text != "echo: hello" {
		t.Errorf("unexpected turns: %+v", hist.Turns)
	}

	if err := uc.Reset(ctx, out.SessionID); err != nil {
		t.Fatalf("unexpected reset error: %v", err)
	}
	if _, err := uc.History(ctx, out.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after reset, got %v", err)
	}
	if err := uc.Reset(ctx, out.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on second reset, got %v", err)
	}
}

func TestSend_UnknownSessionStartsNew(t *testing.T) {
	uc, _ := newTestUseCase(Config{}, "echo", nil)

	out, err := uc.Send(context.Background(), chat.SendInput{SessionID: "expired", Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == "expired" || out.SessionID == "" {
		t.Errorf("expected a fresh session id, got %q", out.SessionID)
	}
}

func TestSend_ActiveSessionOutlivesTTL(t *testing.T) {
	uc, created := newTestUseCase(Config{SessionTTL: 300 * time.Millisecond}, "echo", nil)
	ctx := context.Background()

	first, err := uc.Send(ctx, chat.SendInput{Message: "m0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Five sends 120ms apart span 600ms, twice the TTL.
	for i := 1; i <= 5; i++ {
		time.Sleep(120 * time.Millisecond)
		out, err := uc.Send(ctx, chat.SendInput{SessionID: first.SessionID, Message: fmt.Sprintf("m%d", i)})
		if err != nil {
			t.Fatalf("send %d: unexpected error: %v", i, err)
		}
		if out.SessionID != first.SessionID {
			t.Fatalf("send %d: session replaced while active", i)
		}
	}

	d := created["gemini-2.5-flash"]
	if got := len(d.histories[5]); got != 10 {
		t.Errorf("expected 10 replayed turns on the last send, got %d", got)
	}
}

func TestSend_IdleSessionExpires(t *testing.T) {
	uc, created := newTestUseCase(Config{SessionTTL: 100 * time.Millisecond}, "echo", nil)
	ctx := context.Background()

	first, _ := uc.Send(ctx, chat.SendInput{Message: "m0"})
	time.Sleep(250 * time.Millisecond)

	out, err := uc.Send(ctx, chat.SendInput{SessionID: first.SessionID, Message: "m1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == first.SessionID {
		t.Errorf("expected a new session after the idle timeout")
	}
	if len(created["gemini-2.5-flash"].histories[1]) != 0 {
		t.Errorf("expired session history should not be replayed")
	}
	if _, err := uc.History(ctx, first.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for the expired session, got %v", err)
	}
}
