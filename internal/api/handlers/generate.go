package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
)

// GenerateHandler produces content (stories, poems, articles) on demand by
// phrasing a generation request and sending it through the normal pipeline.
type GenerateHandler struct {
	agent *agent.Agent
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(ag *agent.Agent) *GenerateHandler {
	return &GenerateHandler{agent: ag}
}

// GenerateRequest is the request body for POST /api/v1/generate-content.
type GenerateRequest struct {
	Topic             string `json:"topic"`
	ContentType       string `json:"content_type"`
	Language          string `json:"language,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// GenerateResponse carries the generated text and the request parameters back.
type GenerateResponse struct {
	GeneratedContent string `json:"generated_content"`
	Topic            string `json:"topic"`
	ContentType      string `json:"content_type"`
	Language         string `json:"language"`
	Timestamp        string `json:"timestamp"`
}

// Generate handles POST /api/v1/generate-content.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" || req.ContentType == "" {
		writeError(w, http.StatusBadRequest, "topic and content_type are required")
		return
	}

	message := fmt.Sprintf("Write a %s about %s", req.ContentType, req.Topic)
	if req.AdditionalContext != "" {
		message += ". " + req.AdditionalContext
	}

	reply := h.agent.ProcessMessage(r.Context(), message, nil)

	// The response echoes the requested language; the phrased message itself
	// determines the generation language inside the pipeline.
	lang := req.Language
	if lang == "" {
		lang = reply.Language
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		GeneratedContent: reply.Response,
		Topic:            req.Topic,
		ContentType:      req.ContentType,
		Language:         lang,
		Timestamp:        nowISO(),
	})
}
