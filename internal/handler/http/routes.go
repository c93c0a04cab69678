package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/data", h.getData)
		r.Get("/version", h.getVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
