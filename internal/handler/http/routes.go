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

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Post("/docs", h.createDocument)
			r.Get("/docs/{docID}", h.getDocument)
			r.Post("/docs/{docID}/peers", h.joinDocument)
			r.Delete("/docs/{docID}/peers/{peerID}", h.leaveDocument)
			r.Post("/docs/{docID}/entries", h.setEntry)
			r.Get("/docs/{docID}/events", h.events)
		})

		// blobs are served raw so Content-Length stays exact
		r.Put("/blobs/{contentID}", h.putBlob)
		r.Get("/blobs/{contentID}", h.getBlob)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
