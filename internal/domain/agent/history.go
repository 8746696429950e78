package agent

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// defaultContextTurns is how many recent turns Context includes by default.
const defaultContextTurns = 5

const noPreviousConversation = "No previous conversation."

// Turn is one completed user/agent exchange.
type Turn struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Agent     string    `json:"agent"`
	Language  string    `json:"language"`
	Intent    string    `json:"intent"`
}

// History is the in-process conversation memory shared by all handlers.
// Safe for concurrent use.
type History struct {
	mu    sync.Mutex
	turns []Turn
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Append records a completed turn.
func (h *History) Append(turn Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, turn)
}

// Context renders the last maxTurns exchanges for prompt injection.
// maxTurns <= 0 uses the default of 5.
func (h *History) Context(maxTurns int) string {
	if maxTurns <= 0 {
		maxTurns = defaultContextTurns
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.turns) == 0 {
		return noPreviousConversation
	}

	recent := h.turns
	if len(recent) > maxTurns {
		recent = recent[len(recent)-maxTurns:]
	}

	parts := make([]string, 0, len(recent))
	for _, turn := range recent {
		parts = append(parts, fmt.Sprintf("User: %s\nAgent: %s", turn.User, turn.Agent))
	}
	return strings.Join(parts, "\n\n")
}

// Len returns the number of recorded turns.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Clear discards all recorded turns.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
