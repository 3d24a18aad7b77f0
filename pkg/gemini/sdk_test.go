package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestToGenaiSafety(t *testing.T) {
	out, err := toGenaiSafety([]SafetySetting{
		{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 mapped settings, got %d", len(out))
	}
	if out[0].Category != genai.HarmCategoryHarassment || out[0].Threshold != genai.HarmBlockMediumAndAbove {
		t.Errorf("unexpected mapping: %+v", out[0])
	}
	if out[1].Category != genai.HarmCategoryDangerousContent || out[1].Threshold != genai.HarmBlockNone {
		t.Errorf("unexpected mapping: %+v", out[1])
	}
}

func TestToGenaiSafety_RejectsUnknown(t *testing.T) {
	tests := []struct {
		name    string
		setting SafetySetting
	}{
		{"unknown category", SafetySetting{Category: "HARM_CATEGORY_UNKNOWN", Threshold: "BLOCK_NONE"}},
		{"unknown threshold", SafetySetting{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_SOMETIMES"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := toGenaiSafety([]SafetySetting{tt.setting}); err == nil {
				t.Errorf("expected error for %+v", tt.setting)
			}
		})
	}
}

func TestFromGenaiResponse(t *testing.T) {
	resp := fromGenaiResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: []genai.Part{genai.Text("hello "), genai.Text("there")}},
			FinishReason: genai.FinishReasonStop,
		}},
		UsageMetadata: &genai.UsageMetadata{PromptTokenCount: 2, CandidatesTokenCount: 3, TotalTokenCount: 5},
	})

	if resp.Text() != "hello there" {
		t.Errorf("unexpected text: %q", resp.Text())
	}
	if resp.FinishReason != FinishReasonStop {
		t.Errorf("unexpected finish reason: %s", resp.FinishReason)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}

	empty := fromGenaiResponse(&genai.GenerateContentResponse{})
	if empty.Text() != "" || empty.Content.Role != RoleModel {
		t.Errorf("unexpected empty response: %+v", empty)
	}
}
