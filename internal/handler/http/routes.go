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

	// account linking
	router.Group(func(r chi.Router) {
		r.Post("/api/users/create", h.createAccount)
		r.Get("/api/auth/callback", h.oauthCallback)
	})

	// mailbox synchronization and retrieval
	router.Group(func(r chi.Router) {
		r.Post("/api/emails/sync", h.syncEmails)
		r.Post("/api/mailbox/sync", h.syncMailbox)
		r.Get("/api/emails/fetch/{userID}", h.fetchEmails)
		r.Get("/api/mailbox/fetch/{userID}", h.fetchMailbox)
	})

	return router
}
