package gemini

import "context"

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string

	// Close releases resources held by the client.
	Close() error
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendREST:
		return newGeminiImpl(cfg), nil
	case BackendSDK:
		return newSDKImpl(cfg)
	default:
		return nil, ErrUnknownBackend
	}
}
