package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"wallboard/internal/httpapi/middleware"
	"wallboard/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router wires in front of
// the handlers.
type RouterConfig struct {
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the dashboard routes.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.Ping)

		r.Get("/bus", h.BusPredictions)
		r.Get("/bus-dirs", h.BusDirections)
		r.Get("/bus-stops", h.BusStops)
		r.Get("/train", h.TrainArrivals)

		r.Get("/sports", h.SportsStatus)

		r.Get("/sonos/login", h.SonosLogin)
		r.Get("/sonos/callback", h.SonosCallback)
		r.Get("/sonos/now-playing", h.SonosNowPlaying)

		r.Get("/pullups", h.PullupsToday)
		r.Post("/pullups/{person}/inc", h.PullupsIncrement)
		r.Post("/pullups/{person}/dec", h.PullupsDecrement)
	})

	return r
}
