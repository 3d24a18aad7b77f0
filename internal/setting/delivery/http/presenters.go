package http

import "gemini-chatbot/internal/model"

type modelResp struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	BestFor     []string `json:"best_for"`
	Default     bool     `json:"default"`
}

type modelsResp struct {
	DefaultModel string      `json:"default_model"`
	Models       []modelResp `json:"models"`
}

func newModelResp(m model.ModelDescriptor, defaultID string) modelResp {
	return modelResp{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Features:    m.Features,
		BestFor:     m.BestFor,
		Default:     m.ID == defaultID,
	}
}

func (h *handler) newModelsResp() modelsResp {
	models := make([]modelResp, len(h.settings.Catalog))
	for i, m := range h.settings.Catalog {
		models[i] = newModelResp(m, h.settings.DefaultModel)
	}
	return modelsResp{
		DefaultModel: h.settings.DefaultModel,
		Models:       models,
	}
}
