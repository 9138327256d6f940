package httpapi

import "net/http"

// nonNil keeps absent upstream arrays rendering as [] instead of null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

// BusPredictions serves upcoming arrivals for one stop.
// GET /api/bus?stpid=...&rt=...&top=...
func (h *Handler) BusPredictions(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	q := r.URL.Query()

	rows, apiErr, err := h.bus.Predictions(r.Context(), q.Get("stpid"), q.Get("rt"), q.Get("top"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":  nonNil(rows),
		"error": nullable(apiErr),
	}, logger)
}

// BusDirections lists a route's travel directions.
// GET /api/bus-dirs?rt=...
func (h *Handler) BusDirections(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)

	directions, apiErr, err := h.bus.Directions(r.Context(), r.URL.Query().Get("rt"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"directions": nonNil(directions),
		"error":      nullable(apiErr),
	}, logger)
}

// BusStops lists a route's stops, optionally filtered by direction, so stop
// IDs can be confirmed when setting up the display.
// GET /api/bus-stops?rt=...&dir=...
func (h *Handler) BusStops(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	q := r.URL.Query()

	stops, apiErr, err := h.bus.Stops(r.Context(), q.Get("rt"), q.Get("dir"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stops": nonNil(stops),
		"error": nullable(apiErr),
	}, logger)
}

// TrainArrivals serves predicted train arrivals for one station.
// GET /api/train?mapid=...&max=...
func (h *Handler) TrainArrivals(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	q := r.URL.Query()

	rows, apiErr, err := h.train.Arrivals(r.Context(), q.Get("mapid"), q.Get("max"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	if apiErr != "" {
		writeJSON(w, http.StatusOK, map[string]any{"error": apiErr}, logger)
		return
	}
	writeJSON(w, http.StatusOK, rows, logger)
}

// nullable renders an empty upstream error string as JSON null, matching
// what the dashboard already handles.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
