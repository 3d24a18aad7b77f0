package setting

import "gemini-chatbot/internal/model"

// Settings is the validated subset of the process configuration. It is built
// once at startup and passed to every consumer.
type Settings struct {
	APIKey            string
	DefaultModel      string
	SafetyRules       []model.SafetyRule
	SystemInstruction string
	Catalog           []model.ModelDescriptor
}

// ValidationResult reports every configuration issue found in one pass.
type ValidationResult struct {
	Valid  bool      `json:"valid"`
	Issues []string  `json:"issues"`
	Config Effective `json:"config"`
}

// Effective is a snapshot of the settings a validation ran against.
type Effective struct {
	APIKeySet       bool     `json:"api_key_set"`
	DefaultModel    string   `json:"default_model"`
	AvailableModels []string `json:"available_models"`
}
