package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wallboard/internal/logging"
	"wallboard/internal/pullups"
)

type mutateFunc func(ctx context.Context, person string) (pullups.Mutation, error)

// PullupsToday reads everyone's count for the current day.
// GET /api/pullups
func (h *Handler) PullupsToday(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)

	counts, err := h.store.Today(r.Context())
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	body := map[string]any{"date": counts.Date}
	for person, count := range counts.Persons {
		body[person] = count
	}
	writeJSON(w, http.StatusOK, body, logger)
}

// PullupsIncrement adds one rep for a person.
// POST /api/pullups/{person}/inc
func (h *Handler) PullupsIncrement(w http.ResponseWriter, r *http.Request) {
	h.mutatePullups(w, r, h.store.Increment)
}

// PullupsDecrement removes one rep for a person, flooring at zero.
// POST /api/pullups/{person}/dec
func (h *Handler) PullupsDecrement(w http.ResponseWriter, r *http.Request) {
	h.mutatePullups(w, r, h.store.Decrement)
}

func (h *Handler) mutatePullups(w http.ResponseWriter, r *http.Request, mutate mutateFunc) {
	logger := loggerFromRequest(r, h.logger)
	person := chi.URLParam(r, "person")

	m, err := mutate(r.Context(), person)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	logging.Info(logger, "counter updated",
		slog.String(logging.FieldPerson, m.Person),
		slog.String(logging.FieldDate, m.Date),
		slog.Int(logging.FieldCount, m.Count),
	)
	writeJSON(w, http.StatusOK, m, logger)
}
