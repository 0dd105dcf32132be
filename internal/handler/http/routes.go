package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/login", h.login)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.registerUser)
		})

		r.Route("/blogs", func(r chi.Router) {
			// routes without authorization
			r.Get("/", h.listBlogs)
			r.Get("/stats", h.blogStats)
			r.Get("/{id}", h.getBlog)
			r.Put("/{id}", h.updateBlog)

			// routes that need the caller's identity
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createBlog)
				r.Delete("/{id}", h.deleteBlog)
			})
		})
	})

	router.NotFound(h.unknownEndpoint)
	router.MethodNotAllowed(h.unknownEndpoint)

	return router
}
