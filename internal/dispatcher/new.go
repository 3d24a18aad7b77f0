package dispatcher

import (
	"fmt"

	"gemini-chatbot/internal/model"
	"gemini-chatbot/pkg/gemini"
	"gemini-chatbot/pkg/log"
)

type implDispatcher struct {
	l                 log.Logger
	client            gemini.IGemini
	model             string
	systemInstruction string
	safetySettings    []gemini.SafetySetting
}

// New builds a Gemini client from cfg and wraps it. The model identifier is
// forwarded as is; an unknown model is rejected by the remote API.
func New(l log.Logger, cfg Config) (Dispatcher, error) {
	client, err := gemini.New(gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		APIURL:  cfg.APIURL,
		Backend: cfg.Backend,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}
	return NewWithClient(l, client, cfg.Model, cfg.SystemInstruction, cfg.SafetyRules), nil
}

// NewWithClient wraps an existing client. An empty modelID uses the
// client's own model.
func NewWithClient(l log.Logger, client gemini.IGemini, modelID, systemInstruction string, rules []model.SafetyRule) Dispatcher {
	if modelID == "" {
		modelID = client.Model()
	}
	return &implDispatcher{
		l:                 l,
		client:            client,
		model:             modelID,
		systemInstruction: systemInstruction,
		safetySettings:    toSafetySettings(rules),
	}
}
