package dispatcher

import (
	"context"

	"gemini-chatbot/internal/model"
	"gemini-chatbot/pkg/gemini"
)

func (d *implDispatcher) GetResponse(ctx context.Context, prompt string) (string, error) {
	return d.Converse(ctx, nil, prompt)
}

func (d *implDispatcher) Converse(ctx context.Context, history []Turn, prompt string) (string, error) {
	resp, err := d.client.GenerateContent(ctx, d.buildRequest(history, prompt))
	if err != nil {
		return "", &DispatchError{Model: d.model, Err: err}
	}

	text := resp.Text()
	if text == "" {
		d.l.Warnf(ctx, "internal.dispatcher.Converse: empty reply from %s (finish_reason=%s)", d.model, resp.FinishReason)
	} else if resp.Usage != nil {
		d.l.Debugf(ctx, "internal.dispatcher.Converse: model=%s input_tokens=%d output_tokens=%d",
			d.model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	return text, nil
}

func (d *implDispatcher) Model() string {
	return d.model
}

func (d *implDispatcher) buildRequest(history []Turn, prompt string) *gemini.Request {
	messages := make([]gemini.Content, 0, len(history)+1)
	for _, t := range history {
		messages = append(messages, gemini.Text(string(t.Role), t.Text))
	}
	messages = append(messages, gemini.Text(gemini.RoleUser, prompt))

	req := &gemini.Request{
		Model:          d.model,
		Messages:       messages,
		SafetySettings: d.safetySettings,
	}
	if d.systemInstruction != "" {
		req.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: d.systemInstruction}}}
	}
	return req
}

func toSafetySettings(rules []model.SafetyRule) []gemini.SafetySetting {
	settings := make([]gemini.SafetySetting, len(rules))
	for i, r := range rules {
		settings[i] = gemini.SafetySetting{
			Category:  string(r.Category),
			Threshold: string(r.Threshold),
		}
	}
	return settings
}
