// Package httpapi exposes the dashboard's HTTP surface: transit lookups,
// sports status, speaker control, the pull-up counter, and a liveness ping.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"wallboard/internal/pullups"
	"wallboard/internal/sonos"
	"wallboard/internal/sports"
	"wallboard/internal/transit/bus"
	"wallboard/internal/transit/train"
)

// Handler wires HTTP routes to the adapters.
type Handler struct {
	bus    *bus.Client
	train  *train.Client
	sports *sports.Service
	sonos  *sonos.Client
	store  *pullups.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(busClient *bus.Client, trainClient *train.Client, sportsService *sports.Service, sonosClient *sonos.Client, store *pullups.Store, logger *slog.Logger) *Handler {
	return &Handler{
		bus:    busClient,
		train:  trainClient,
		sports: sportsService,
		sonos:  sonosClient,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Ping reports liveness with the current server time.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": h.now().UTC().Format(time.RFC3339),
	}, loggerFromRequest(r, h.logger))
}
