package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	corslib "github.com/rs/cors"

	"github.com/Alejomarqz/liganacionalgt-live/internal/http/handlers"
)

// NewRouter registers the API routes on a chi router with CORS configured for
// the mobile/web consumers.
func NewRouter(h *handlers.Handler, corsOrigins []string) nethttp.Handler {
	r := chi.NewRouter()

	c := corslib.New(corslib.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/schedule/{scope}", func(r chi.Router) {
		r.Get("/", h.Schedule)
		r.Get("/rounds/{key}", h.Round)
		r.Post("/active", h.Activate)
		r.Post("/refresh", h.Refresh)
	})

	return r
}
