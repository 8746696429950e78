package handlers

import (
	"net/http"
	"time"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
)

// StatsHandler reports agent statistics and clears the in-process history.
type StatsHandler struct {
	agent   *agent.Agent
	started time.Time
}

// NewStatsHandler creates a StatsHandler. The uptime clock starts now.
func NewStatsHandler(ag *agent.Agent) *StatsHandler {
	return &StatsHandler{agent: ag, started: time.Now()}
}

// Stats handles GET /api/v1/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.agent.Statistics()
	stats["uptime"] = time.Since(h.started).Round(time.Second).String()
	writeJSON(w, http.StatusOK, stats)
}

// ClearHistory handles DELETE /api/v1/history.
func (h *StatsHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.agent.ClearHistory()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "success",
		"message":   "Conversation history cleared",
		"timestamp": nowISO(),
	})
}
