package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/umaryunusa/wazobia/internal/domain/language"
)

// DetectHandler exposes the rule-based language detector as an endpoint.
type DetectHandler struct{}

// NewDetectHandler creates a DetectHandler.
func NewDetectHandler() *DetectHandler {
	return &DetectHandler{}
}

// DetectRequest is the request body for POST /api/v1/detect-language.
type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse carries the detection verdict and the full score table.
type DetectResponse struct {
	Text             string             `json:"text"`
	DetectedLanguage string             `json:"detected_language"`
	LanguageName     string             `json:"language_name"`
	Confidence       float64            `json:"confidence"`
	AllScores        map[string]float64 `json:"all_scores"`
	IsMixed          bool               `json:"is_mixed"`
}

// Detect handles POST /api/v1/detect-language.
func (h *DetectHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := language.Detect(req.Text)

	writeJSON(w, http.StatusOK, DetectResponse{
		Text:             req.Text,
		DetectedLanguage: result.Language,
		LanguageName:     language.Name(result.Language),
		Confidence:       result.Confidence,
		AllScores:        result.Scores,
		IsMixed:          result.IsMixed,
	})
}
