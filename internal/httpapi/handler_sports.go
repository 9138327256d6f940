package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"wallboard/internal/logging"
)

// SportsStatus resolves a team's live-or-next game status.
// GET /api/sports?team=bulls|bears|creighton
func (h *Handler) SportsStatus(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	team := strings.ToLower(r.URL.Query().Get("team"))

	status, recognized, err := h.sports.Status(r.Context(), team)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	if !recognized {
		logging.Info(logger, "unrecognized team key", slog.String(logging.FieldTeam, team))
	}
	writeJSON(w, http.StatusOK, status, logger)
}
