package model

// ModelDescriptor describes one entry of the compiled-in model catalog.
type ModelDescriptor struct {
	ID          string
	Name        string
	Description string
	Features    []string
	BestFor     []string
}

// DefaultModelID is used when no default model is configured.
const DefaultModelID = "gemini-2.5-flash"

// catalog is the fixed set of models the chatbot offers, in display order.
var catalog = []ModelDescriptor{
	{
		ID:          "gemini-2.5-pro",
		Name:        "Gemini 2.5 Pro",
		Description: "Most advanced reasoning and complex tasks",
		Features:    []string{"Enhanced thinking", "Advanced coding", "Multimodal understanding"},
		BestFor:     []string{"Complex analysis", "Research", "Advanced coding tasks"},
	},
	{
		ID:          "gemini-2.5-flash",
		Name:        "Gemini 2.5 Flash",
		Description: "Best price-performance with adaptive thinking",
		Features:    []string{"Cost efficient", "Fast responses", "Good reasoning"},
		BestFor:     []string{"General chat", "Quick tasks", "Daily assistance"},
	},
	{
		ID:          "gemini-2.0-flash",
		Name:        "Gemini 2.0 Flash",
		Description: "Next generation features and real-time streaming",
		Features:    []string{"Real-time capabilities", "Advanced features", "High speed"},
		BestFor:     []string{"Real-time interactions", "Streaming responses"},
	},
}

// Catalog returns a copy of the model catalog in display order.
func Catalog() []ModelDescriptor {
	out := make([]ModelDescriptor, len(catalog))
	for i, m := range catalog {
		out[i] = ModelDescriptor{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Features:    append([]string(nil), m.Features...),
			BestFor:     append([]string(nil), m.BestFor...),
		}
	}
	return out
}

// ModelIDs returns the catalog identifiers in display order.
func ModelIDs() []string {
	ids := make([]string, len(catalog))
	for i, m := range catalog {
		ids[i] = m.ID
	}
	return ids
}

// LookupModel returns the descriptor for id.
func LookupModel(id string) (ModelDescriptor, bool) {
	for _, m := range Catalog() {
		if m.ID == id {
			return m, true
		}
	}
	return ModelDescriptor{}, false
}

// IsKnownModel reports whether id is a catalog key.
func IsKnownModel(id string) bool {
	_, ok := LookupModel(id)
	return ok
}
