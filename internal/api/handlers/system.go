// Public system endpoints: service info, health and the language catalogue.
package handlers

import (
	"net/http"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
	"github.com/umaryunusa/wazobia/internal/infra/config"
)

// SystemHandler serves the unauthenticated service endpoints.
type SystemHandler struct {
	agent *agent.Agent
	cfg   config.Config
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(ag *agent.Agent, cfg config.Config) *SystemHandler {
	return &SystemHandler{agent: ag, cfg: cfg}
}

// LanguageInfo describes one supported language for GET /languages.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Example    string `json:"example"`
}

// Root handles GET / with service info.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        h.cfg.AppName,
		"version":     h.cfg.AppVersion,
		"description": "AI agent for Nigerian languages (Hausa, Pidgin, Yoruba)",
		"endpoints": map[string]string{
			"POST /api/v1/chat":             "Process chat messages",
			"POST /api/v1/translate":        "Translate text between languages",
			"POST /api/v1/detect-language":  "Detect language of text",
			"POST /api/v1/generate-content": "Generate content in Nigerian languages",
			"GET /api/v1/stats":             "Get agent statistics",
			"GET /health":                   "Health check",
		},
		"supported_languages": []string{
			"Hausa (ha)", "Nigerian Pidgin (pcm)", "Yoruba (yo)", "English (en)",
		},
	})
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	sizes, _ := h.agent.Statistics()["knowledge_base_size"].(map[string]int)
	loaded := false
	for _, n := range sizes {
		if n > 0 {
			loaded = true
			break
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":                "healthy",
		"timestamp":             nowISO(),
		"agent_initialized":     true,
		"knowledge_base_loaded": loaded,
	})
}

// Languages handles GET /languages.
func (h *SystemHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": []LanguageInfo{
			{Code: "ha", Name: "Hausa", NativeName: "Hausa", Example: "Sannu, yaya kuke?"},
			{Code: "pcm", Name: "Nigerian Pidgin", NativeName: "Naija Pidgin", Example: "How you dey?"},
			{Code: "yo", Name: "Yoruba", NativeName: "Yorùbá", Example: "Báwo ni?"},
			{Code: "en", Name: "English", NativeName: "English", Example: "How are you?"},
		},
	})
}
