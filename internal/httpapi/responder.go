package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"wallboard/internal/apperr"
	"wallboard/internal/httpapi/middleware"
	"wallboard/internal/logging"
)

// writeJSON emits a JSON body with the no-store directive every live-state
// endpoint requires.
func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeError maps the error taxonomy to a status code and a `{error}` body.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	body := map[string]string{"error": err.Error()}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, apperr.HTTPStatus(err), body, logger)
}

func loggerFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
