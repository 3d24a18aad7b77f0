package model_test

import (
	"testing"

	"gemini-chatbot/internal/model"
)

func TestModelIDs(t *testing.T) {
	ids := model.ModelIDs()
	want := []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash"}

	if len(ids) != len(want) {
		t.Fatalf("expected %d models, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("model %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestCatalogIsACopy(t *testing.T) {
	c := model.Catalog()
	c[0].Features[0] = "mutated"
	c[0].ID = "mutated"

	again := model.Catalog()
	if again[0].ID != "gemini-2.5-pro" || again[0].Features[0] != "Enhanced thinking" {
		t.Errorf("catalog was mutated through returned copy: %+v", again[0])
	}
}

func TestLookupModel(t *testing.T) {
	m, ok := model.LookupModel(model.DefaultModelID)
	if !ok {
		t.Fatalf("default model %s missing from catalog", model.DefaultModelID)
	}
	if m.Name != "Gemini 2.5 Flash" {
		t.Errorf("unexpected name: %s", m.Name)
	}

	if model.IsKnownModel("bogus-model") {
		t.Errorf("bogus-model should not be known")
	}
}

func TestDefaultSafetyRules(t *testing.T) {
	rules := model.DefaultSafetyRules()
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	for _, r := range rules {
		if r.Threshold != model.BlockMediumAndAbove {
			t.Errorf("%s: expected %s, got %s", r.Category, model.BlockMediumAndAbove, r.Threshold)
		}
	}
}
