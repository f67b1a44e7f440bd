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
	router.Use(withGZip)

	router.Route("/api/notes", func(r chi.Router) {
		r.Post("/", h.createNote)
		r.Post("/title-only", h.createTitleOnly)
		r.Get("/", h.listNotes)

		r.Route("/{noteID}", func(r chi.Router) {
			r.Get("/", h.getNote)
			r.Put("/", h.updateNote)
			r.Delete("/", h.deleteNote)

			r.Post("/summarize", h.summarize)
			r.Post("/generate-title", h.generateTitle)
			r.Post("/elaborate", h.elaborate)
		})
	})

	return router
}
