// HTTP handler for the chat pipeline. Concurrency is bounded by a semaphore
// so a burst of users cannot fan out into unbounded LLM calls.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
	"github.com/umaryunusa/wazobia/internal/domain/conversation"
	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
)

// ChatHandler routes chat messages through the agent pipeline.
type ChatHandler struct {
	agent *agent.Agent
	bus   eventbus.EventBus
	sem   chan struct{}
}

// NewChatHandler creates a ChatHandler. maxConcurrent bounds the number of
// in-flight chat requests; further requests wait until a slot frees up or the
// client gives up.
func NewChatHandler(ag *agent.Agent, bus eventbus.EventBus, maxConcurrent int) *ChatHandler {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ChatHandler{
		agent: ag,
		bus:   bus,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

// ChatRequest is the request body for POST /api/v1/chat.
type ChatRequest struct {
	Message            string   `json:"message"`
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
}

// ChatResponse is returned for each processed message.
type ChatResponse struct {
	Response         string         `json:"response"`
	Language         string         `json:"language"`
	DetectedLanguage string         `json:"detected_language"`
	Intent           string         `json:"intent"`
	Metadata         map[string]any `json:"metadata"`
	Timestamp        string         `json:"timestamp"`
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx := r.Context()
	select {
	case h.sem <- struct{}{}:
		defer func() { <-h.sem }()
	case <-ctx.Done():
		writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for a chat slot")
		return
	}

	reply := h.agent.ProcessMessage(ctx, req.Message, &agent.Options{
		PreferredLanguages: req.PreferredLanguages,
	})

	if userID, err := getUserID(ctx); err == nil {
		h.bus.Publish(conversation.TopicConversationTurn, conversation.TurnEvent{
			UserID:           userID,
			UserMessage:      req.Message,
			AssistantMessage: reply.Response,
			Language:         reply.Language,
			Intent:           reply.Intent,
		})
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Response:         reply.Response,
		Language:         reply.Language,
		DetectedLanguage: detectedLanguage(reply),
		Intent:           reply.Intent,
		Metadata:         reply.Metadata,
		Timestamp:        nowISO(),
	})
}

// detectedLanguage recovers the input language from reply metadata; handlers
// that never override the response language omit it.
func detectedLanguage(reply *agent.Reply) string {
	if lang, ok := reply.Metadata["input_language"].(string); ok && lang != "" {
		return lang
	}
	return reply.Language
}
