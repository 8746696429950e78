// HTTP handlers for per-user persisted conversations. All routes require
// authentication; the user id comes from the JWT claims in context.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/umaryunusa/wazobia/internal/domain/conversation"
)

// ConversationHandler serves the /api/v1/conversations subtree.
type ConversationHandler struct {
	svc *conversation.Service
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc *conversation.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// CreateConversationRequest is the request body for POST /api/v1/conversations.
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// List handles GET /api/v1/conversations.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	conversations, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list conversations")
		return
	}
	if conversations == nil {
		conversations = []conversation.Conversation{}
	}
	writeJSON(w, http.StatusOK, conversations)
}

// Create handles POST /api/v1/conversations.
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		req.Title = "New Conversation"
	}

	c, err := h.svc.Create(r.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationLimit) {
			writeError(w, http.StatusForbidden, fmt.Sprintf(
				"You've reached the maximum of %d conversations. Please upgrade for more.",
				conversation.MaxConversations))
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create conversation")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Messages handles GET /api/v1/conversations/{id}/messages.
func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	conversationID := chi.URLParam(r, "id")
	messages, err := h.svc.Messages(r.Context(), conversationID, userID)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Conversation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	if messages == nil {
		messages = []conversation.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Stats handles GET /api/v1/conversations/stats.
func (h *ConversationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	stats, err := h.svc.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
