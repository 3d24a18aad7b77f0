package dispatcher_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/model"
	"gemini-chatbot/pkg/gemini"
	"gemini-chatbot/pkg/log"
)

// mockGeminiClient records every request and answers from a script.
type mockGeminiClient struct {
	requests []*gemini.Request
	reply    func(n int) (*gemini.Response, error)
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.requests = append(m.requests, req)
	return m.reply(len(m.requests))
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }
func (m *mockGeminiClient) Close() error  { return nil }

func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		Content: gemini.Text(gemini.RoleModel, text),
		Usage:   &gemini.Usage{InputTokens: 1, OutputTokens: 1, TotalTokens: 2},
	}
}

func TestGetResponse_BuildsRequest(t *testing.T) {
	client := &mockGeminiClient{reply: func(int) (*gemini.Response, error) { return textResponse("Hello World"), nil }}
	d := dispatcher.NewWithClient(log.NewNop(), client, "gemini-2.5-flash", "system text", model.DefaultSafetyRules())

	got, err := d.GetResponse(context.Background(), "Say 'Hello World' in response.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello World" {
		t.Errorf("unexpected reply: %q", got)
	}

	if len(client.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(client.requests))
	}
	req := client.requests[0]
	if req.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected model: %s", req.Model)
	}
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "system text" {
		t.Errorf("system instruction missing: %+v", req.SystemInstruction)
	}
	if len(req.SafetySettings) != 4 || req.SafetySettings[0].Category != "HARM_CATEGORY_HARASSMENT" {
		t.Errorf("unexpected safety settings: %+v", req.SafetySettings)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != gemini.RoleUser || req.Messages[0].Parts[0].Text != "Say 'Hello World' in response." {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
}

func TestGetResponse_NoCaching(t *testing.T) {
	client := &mockGeminiClient{reply: func(n int) (*gemini.Response, error) {
		return textResponse(fmt.Sprintf("reply %d", n)), nil
	}}
	d := dispatcher.NewWithClient(log.NewNop(), client, "gemini-2.5-flash", "", nil)

	first, _ := d.GetResponse(context.Background(), "same prompt")
	second, _ := d.GetResponse(context.Background(), "same prompt")

	if len(client.requests) != 2 {
		t.Fatalf("expected 2 round trips, got %d", len(client.requests))
	}
	if first == second {
		t.Errorf("expected independent replies, got %q twice", first)
	}
}

func TestGetResponse_Failure(t *testing.T) {
	cause := &gemini.APIError{StatusCode: 401, Message: "API key not valid"}
	client := &mockGeminiClient{reply: func(int) (*gemini.Response, error) { return nil, cause }}
	d := dispatcher.NewWithClient(log.NewNop(), client, "gemini-2.5-pro", "", nil)

	_, err := d.GetResponse(context.Background(), "hi")

	var dispatchErr *dispatcher.DispatchError
	if !errors.As(err, &dispatchErr) {
		t.Fatalf("expected *DispatchError, got %v", err)
	}
	if dispatchErr.Model != "gemini-2.5-pro" {
		t.Errorf("unexpected model on error: %s", dispatchErr.Model)
	}
	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) {
		t.Errorf("underlying error not reachable through Unwrap")
	}
	if len(client.requests) != 1 {
		t.Errorf("expected no retry, got %d requests", len(client.requests))
	}
}

func TestGetResponse_EmptyIsNotAnError(t *testing.T) {
	client := &mockGeminiClient{reply: func(int) (*gemini.Response, error) {
		return &gemini.Response{Content: gemini.Content{Role: gemini.RoleModel}, FinishReason: gemini.FinishReasonSafety}, nil
	}}
	d := dispatcher.NewWithClient(log.NewNop(), client, "gemini-2.5-flash", "", nil)

	got, err := d.GetResponse(context.Background(), "hi")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty reply, got %q", got)
	}
}

func TestConverse_ReplaysHistory(t *testing.T) {
	client := &mockGeminiClient{reply: func(int) (*gemini.Response, error) { return textResponse("ok"), nil }}
	d := dispatcher.NewWithClient(log.NewNop(), client, "", "", nil)

	if d.Model() != "gemini-test" {
		t.Errorf("expected fallback to client model, got %s", d.Model())
	}

	history := []dispatcher.Turn{
		{Role: dispatcher.RoleUser, Text: "first"},
		{Role: dispatcher.RoleModel, Text: "answer"},
	}
	if _, err := d.Converse(context.Background(), history, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := client.requests[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Role != gemini.RoleModel || msgs[1].Parts[0].Text != "answer" {
		t.Errorf("unexpected replayed turn: %+v", msgs[1])
	}
	if msgs[2].Parts[0].Text != "second" {
		t.Errorf("unexpected prompt: %+v", msgs[2])
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := dispatcher.New(log.NewNop(), dispatcher.Config{Model: "gemini-2.5-flash"})
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}
