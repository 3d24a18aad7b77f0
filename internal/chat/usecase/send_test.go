package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/dispatcher"
)

func TestSend_NewSession(t *testing.T) {
	uc, created := newTestUseCase(Config{}, "echo", nil)

	out, err := uc.Send(context.Background(), chat.SendInput{Message: "  hello  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == "" {
		t.Errorf("expected a session id")
	}
	if out.Model != "gemini-2.5-flash" {
		t.Errorf("expected default model, got %s", out.Model)
	}
	if out.Reply != "echo: hello" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if out.Empty {
		t.Errorf("reply should not be flagged empty")
	}
	if len(created["gemini-2.5-flash"].histories[0]) != 0 {
		t.Errorf("first message should carry no history")
	}
}

func TestSend_ReplaysHistory(t *testing.T) {
	uc, created := newTestUseCase(Config{}, "echo", nil)
	ctx := context.Background()

	first, _ := uc.Send(ctx, chat.SendInput{Message: "one"})
	if _, err := uc.Send(ctx, chat.SendInput{SessionID: first.SessionID, Message: "two"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := created["gemini-2.5-flash"]
	if len(d.histories) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(d.histories))
	}
	h := d.histories[1]
	if len(h) != 2 || h[0].Role != dispatcher.RoleUser || h[0].Text != "one" || h[1].Role != dispatcher.RoleModel {
		t.Errorf("unexpected replayed history: %+v", h)
	}
}

func TestSend_SessionsAreIsolated(t *testing.T) {
	uc, created := newTestUseCase(Config{}, "echo", nil)
	ctx := context.Background()

	a, _ := uc.Send(ctx, chat.SendInput{Message: "from a"})
	b, _ := uc.Send(ctx, chat.SendInput{Message: "from b"})
	if a.SessionID == b.SessionID {
		t.Fatalf("expected distinct sessions")
	}

	if len(created["gemini-2.5-flash"].histories[1]) != 0 {
		t.Errorf("session b saw history of session a")
	}
}

func TestSend_Validation(t *testing.T) {
	uc, _ := newTestUseCase(Config{}, "echo", nil)

	if _, err := uc.Send(context.Background(), chat.SendInput{Message: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := uc.Send(context.Background(), chat.SendInput{Message: "hi", Model: "bogus-model"}); !errors.Is(err, chat.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestSend_ModelSwitchKeepsHistory(t *testing.T) {
	uc, created := newTestUseCase(Config{}, "echo", nil)
	ctx := context.Background()

	first, _ := uc.Send(ctx, chat.SendInput{Message: "one"})
	out, err := uc.Send(ctx, chat.SendInput{SessionID: first.SessionID, Model: "gemini-2.5-pro", Message: "two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Model != "gemini-2.5-pro" {
		t.Errorf("expected switched model, got %s", out.Model)
	}
	pro := created["gemini-2.5-pro"]
	if pro == nil || len(pro.histories[0]) != 2 {
		t.Errorf("expected pro dispatcher to receive prior history")
	}
}

func TestSend_FailureLeavesHistoryUntouched(t *testing.T) {
	cause := &dispatcher.DispatchError{Model: "gemini-2.5-flash", Err: errors.New("unauthenticated")}
	uc, _ := newTestUseCase(Config{}, "", cause)

	_, err := uc.Send(context.Background(), chat.SendInput{Message: "hi"})
	if !errors.Is(err, chat.ErrDispatchFailed) {
		t.Errorf("expected ErrDispatchFailed, got %v", err)
	}
	var dispatchErr *dispatcher.DispatchError
	if !errors.As(err, &dispatchErr) {
		t.Errorf("expected DispatchError in chain, got %v", err)
	}
}

func TestSend_EmptyReply(t *testing.T) {
	uc, _ := newTestUseCase(Config{}, "", nil)
	ctx := context.Background()

	out, err := uc.Send(ctx, chat.SendInput{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Empty || out.Reply != "" {
		t.Errorf("expected empty reply flag, got %+v", out)
	}

	hist, err := uc.History(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.Turns) != 0 {
		t.Errorf("empty reply should not be recorded, got %d turns", len(hist.Turns))
	}
}

func TestSend_TrimsHistory(t *testing.T) {
	uc, _ := newTestUseCase(Config{MaxHistory: 4}, "echo", nil)
	ctx := context.Background()

	out, _ := uc.Send(ctx, chat.SendInput{Message: "m0"})
	for i := 1; i < 5; i++ {
		if _, err := uc.Send(ctx, chat.SendInput{SessionID: out.SessionID, Message: fmt.Sprintf("m%d", i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	hist, _ := uc.History(ctx, out.SessionID)
	if len(hist.Turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(hist.Turns))
	}
	if hist.Turns[0].Role != "user" || hist.Turns[0].Text != "m3" {
		t.Errorf("expected oldest kept turn to be user m3, got %+v", hist.Turns[0])
	}
}

func TestSend_PacesRequests(t *testing.T) {
	uc, _ := newTestUseCase(Config{RateLimitDelay: 50 * time.Millisecond}, "echo", nil)
	ctx := context.Background()

	out, _ := uc.Send(ctx, chat.SendInput{Message: "one"})
	start := time.Now()
	if _, err := uc.Send(ctx, chat.SendInput{SessionID: out.SessionID, Message: "two"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected the second request to be delayed, took %v", elapsed)
	}
}

func TestSend_CancelledWhileWaiting(t *testing.T) {
	uc, _ := newTestUseCase(Config{RateLimitDelay: time.Hour}, "echo", nil)

	out, _ := uc.Send(context.Background(), chat.SendInput{Message: "one"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Send(ctx, chat.SendInput{SessionID: out.SessionID, Message: "two"})
	if !errors.Is(err, chat.ErrRequestAborted) {
		t.Errorf("expected ErrRequestAborted, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected the context error to be wrapped, got %v", err)
	}
}

func TestSend_FactoryError(t *testing.T) {
	factory := func(string) (dispatcher.Dispatcher, error) { return nil, errors.New("no key") }
	uc := New(&mockLogger{}, testSettings(), factory, Config{})

	if _, err := uc.Send(context.Background(), chat.SendInput{Message: "hi"}); !errors.Is(err, chat.ErrDispatchFailed) {
		t.Errorf("expected ErrDispatchFailed, got %v", err)
	}
}
