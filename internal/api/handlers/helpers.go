// Shared helpers for HTTP handlers: JSON writing and context access.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/umaryunusa/wazobia/internal/api/ctxkeys"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError writes a JSON error response with a consistent shape.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// getUserID retrieves the authenticated user's id from context.
// Present on every /api/v1 request because AuthMiddleware injects it.
func getUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(ctxkeys.UserID).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in context")
	}
	return userID, nil
}

// nowISO renders the current UTC time for response timestamps.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
