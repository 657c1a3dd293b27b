package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError emits the {success:false, message} error envelope shared by
// every failure response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, map[string]any{"success": false, "message": message}, status)
}
