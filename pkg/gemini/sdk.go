package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// sdkImpl goes through the official generative-ai-go client.
type sdkImpl struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newSDKImpl(cfg Config) (*sdkImpl, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create sdk client: %w", err)
	}
	return &sdkImpl{client: client, model: cfg.Model, timeout: cfg.Timeout}, nil
}

// GenerateContent replays all but the last message as chat history and sends
// the last one.
func (s *sdkImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("gemini: request has no messages")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	name := s.model
	if req.Model != "" {
		name = req.Model
	}

	m := s.client.GenerativeModel(name)
	if req.SystemInstruction != nil {
		m.SystemInstruction = toGenaiContent(*req.SystemInstruction)
	}
	safety, err := toGenaiSafety(req.SafetySettings)
	if err != nil {
		return nil, err
	}
	m.SafetySettings = safety
	if req.Temperature > 0 {
		m.SetTemperature(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	cs := m.StartChat()
	last := len(req.Messages) - 1
	for _, msg := range req.Messages[:last] {
		cs.History = append(cs.History, toGenaiContent(msg))
	}

	resp, err := cs.SendMessage(ctx, toGenaiParts(req.Messages[last].Parts)...)
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			if blocked.PromptFeedback != nil {
				return nil, fmt.Errorf("%w: %v", ErrPromptBlocked, err)
			}
			// A candidate stopped for safety is an empty answer, not a failure.
			return &Response{
				Content:      Content{Role: RoleModel},
				FinishReason: FinishReasonSafety,
				Usage:        &Usage{},
			}, nil
		}
		return nil, fmt.Errorf("gemini: sdk call failed: %w", err)
	}

	return fromGenaiResponse(resp), nil
}

func (s *sdkImpl) Model() string {
	return s.model
}

func (s *sdkImpl) Close() error {
	return s.client.Close()
}

func toGenaiContent(c Content) *genai.Content {
	return &genai.Content{Role: c.Role, Parts: toGenaiParts(c.Parts)}
}

func toGenaiParts(parts []Part) []genai.Part {
	out := make([]genai.Part, len(parts))
	for i, p := range parts {
		out[i] = genai.Text(p.Text)
	}
	return out
}

var harmCategories = map[string]genai.HarmCategory{
	"HARM_CATEGORY_HARASSMENT":        genai.HarmCategoryHarassment,
	"HARM_CATEGORY_HATE_SPEECH":       genai.HarmCategoryHateSpeech,
	"HARM_CATEGORY_SEXUALLY_EXPLICIT": genai.HarmCategorySexuallyExplicit,
	"HARM_CATEGORY_DANGEROUS_CONTENT": genai.HarmCategoryDangerousContent,
}

var blockThresholds = map[string]genai.HarmBlockThreshold{
	"BLOCK_LOW_AND_ABOVE":    genai.HarmBlockLowAndAbove,
	"BLOCK_MEDIUM_AND_ABOVE": genai.HarmBlockMediumAndAbove,
	"BLOCK_ONLY_HIGH":        genai.HarmBlockOnlyHigh,
	"BLOCK_NONE":             genai.HarmBlockNone,
}

// toGenaiSafety rejects settings whose names the SDK has no enum for.
func toGenaiSafety(settings []SafetySetting) ([]*genai.SafetySetting, error) {
	out := make([]*genai.SafetySetting, 0, len(settings))
	for _, s := range settings {
		category, ok := harmCategories[s.Category]
		if !ok {
			return nil, fmt.Errorf("gemini: unsupported safety category %q", s.Category)
		}
		threshold, ok := blockThresholds[s.Threshold]
		if !ok {
			return nil, fmt.Errorf("gemini: unsupported safety threshold %q", s.Threshold)
		}
		out = append(out, &genai.SafetySetting{Category: category, Threshold: threshold})
	}
	return out, nil
}

func fromGenaiResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Content: Content{Role: RoleModel}, Usage: &Usage{}}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	if len(resp.Candidates) == 0 {
		return out
	}

	candidate := resp.Candidates[0]
	out.FinishReason = finishReasonName(candidate.FinishReason)
	if candidate.Content == nil {
		return out
	}
	for _, p := range candidate.Content.Parts {
		if text, ok := p.(genai.Text); ok {
			out.Content.Parts = append(out.Content.Parts, Part{Text: string(text)})
		}
	}
	return out
}

func finishReasonName(r genai.FinishReason) string {
	switch r {
	case genai.FinishReasonStop:
		return FinishReasonStop
	case genai.FinishReasonMaxTokens:
		return FinishReasonMaxTokens
	case genai.FinishReasonSafety:
		return FinishReasonSafety
	case genai.FinishReasonRecitation:
		return FinishReasonRecitation
	case genai.FinishReasonOther:
		return FinishReasonOther
	default:
		return ""
	}
}
