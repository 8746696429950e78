package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
)

// TranslateHandler exposes the peer-verified translation pipeline directly.
type TranslateHandler struct {
	agent *agent.Agent
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(ag *agent.Agent) *TranslateHandler {
	return &TranslateHandler{agent: ag}
}

// TranslateRequest is the request body for POST /api/v1/translate.
type TranslateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranslateResponse echoes the original text alongside the translation.
type TranslateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Timestamp      string `json:"timestamp"`
}

// Translate handles POST /api/v1/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" || req.SourceLanguage == "" || req.TargetLanguage == "" {
		writeError(w, http.StatusBadRequest, "text, source_language and target_language are required")
		return
	}

	reply := h.agent.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)

	writeJSON(w, http.StatusOK, TranslateResponse{
		OriginalText:   req.Text,
		TranslatedText: reply.Response,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Timestamp:      nowISO(),
	})
}
