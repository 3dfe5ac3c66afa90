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

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)

		// routes behind the session token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/current", h.currentUser)
			r.Patch("/users/current", h.updateUser)
			r.Delete("/users/current", h.logout)

			r.Route("/contacts", func(r chi.Router) {
				r.Post("/", h.createContact)
				r.Get("/", h.searchContacts)

				r.Route("/{contactID}", func(r chi.Router) {
					r.Get("/", h.getContact)
					r.Put("/", h.updateContact)
					r.Delete("/", h.deleteContact)

					r.Route("/addresses", func(r chi.Router) {
						r.Post("/", h.createAddress)
						r.Get("/", h.listAddresses)
						r.Get("/{addressID}", h.getAddress)
						r.Put("/{addressID}", h.updateAddress)
						r.Delete("/{addressID}", h.deleteAddress)
					})
				})
			})
		})
	})

	return router
}
