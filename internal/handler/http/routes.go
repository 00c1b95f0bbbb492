package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	if h.hashKey != "" {
		router.Use(h.withHashing)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/tables", func(r chi.Router) {
			r.Post("/encrypt", h.encryptTable)
			r.Post("/decrypt", h.decryptTable)
		})

		r.Route("/archives", func(r chi.Router) {
			r.Post("/", h.sealQuery)
			r.Get("/", h.listArchives)
			r.Post("/{id}/open", h.openArchive)
			r.Post("/{id}/restore", h.restoreArchive)
			r.Delete("/{id}", h.deleteArchive)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
