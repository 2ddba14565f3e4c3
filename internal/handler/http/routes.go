package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/webhook", h.webhook)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getAppVersion)
		r.Get("/usage/", h.getUsage)
	})

	return router
}
