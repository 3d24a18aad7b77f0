package setting

import (
	"fmt"

	"gemini-chatbot/config"
	"gemini-chatbot/internal/model"
)

// Issue messages.
const (
	IssueAPIKeyNotSet         = "GEMINI_API_KEY not set"
	IssueDefaultModelNotFound = "DEFAULT_MODEL '%s' not in available models"
)

// FromConfig builds Settings from the loaded configuration and the
// compiled-in model catalog.
func FromConfig(cfg *config.Config) Settings {
	return Settings{
		APIKey:            cfg.Gemini.APIKey,
		DefaultModel:      cfg.Gemini.DefaultModel,
		SafetyRules:       cfg.Gemini.SafetyRules,
		SystemInstruction: cfg.Gemini.SystemInstruction,
		Catalog:           model.Catalog(),
	}
}

// Validate checks every rule and accumulates the failures instead of
// stopping at the first one. It never fails; problems are returned as data.
func (s Settings) Validate() ValidationResult {
	issues := []string{}

	if s.APIKey == "" {
		issues = append(issues, IssueAPIKeyNotSet)
	}

	if !s.HasModel(s.DefaultModel) {
		issues = append(issues, fmt.Sprintf(IssueDefaultModelNotFound, s.DefaultModel))
	}

	return ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
		Config: Effective{
			APIKeySet:       s.APIKey != "",
			DefaultModel:    s.DefaultModel,
			AvailableModels: s.ModelIDs(),
		},
	}
}

// HasModel reports whether id is a key of the catalog.
func (s Settings) HasModel(id string) bool {
	for _, m := range s.Catalog {
		if m.ID == id {
			return true
		}
	}
	return false
}

// ModelIDs lists the catalog keys in catalog order.
func (s Settings) ModelIDs() []string {
	ids := make([]string, len(s.Catalog))
	for i, m := range s.Catalog {
		ids[i] = m.ID
	}
	return ids
}
