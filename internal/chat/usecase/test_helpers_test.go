package usecase

import (
	"context"
	"sync"

	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/model"
	"gemini-chatbot/internal/setting"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockDispatcher records the history it was given on each call.
type mockDispatcher struct {
	mu        sync.Mutex
	model     string
	reply     string
	err       error
	histories [][]dispatcher.Turn
	prompts   []string
}

func (m *mockDispatcher) GetResponse(ctx context.Context, prompt string) (string, error) {
	return m.Converse(ctx, nil, prompt)
}

func (m *mockDispatcher) Converse(ctx context.Context, history []dispatcher.Turn, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histories = append(m.histories, history)
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if m.reply == "" {
		return "", nil
	}
	return m.reply + ": " + prompt, nil
}

func (m *mockDispatcher) Model() string { return m.model }

func testSettings() setting.Settings {
	return setting.Settings{
		APIKey:       "key",
		DefaultModel: model.DefaultModelID,
		SafetyRules:  model.DefaultSafetyRules(),
		Catalog:      model.Catalog(),
	}
}

// newTestUseCase wires a usecase whose factory hands out one mockDispatcher per model.
func newTestUseCase(cfg Config, reply string, err error) (*implUseCase, map[string]*mockDispatcher) {
	created := make(map[string]*mockDispatcher)
	factory := func(modelID string) (dispatcher.Dispatcher, error) {
		d := &mockDispatcher{model: modelID, reply: reply, err: err}
		created[modelID] = d
		return d, nil
	}
	return New(&mockLogger{}, testSettings(), factory, cfg), created
}
