package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/registration", h.register)
		r.Post("/auth/registration-confirmation", h.confirmRegistration)
		r.Post("/auth/registration-email-resending", h.resendConfirmation)
		r.Post("/auth/login", h.login)

		r.Get("/version", h.getServerVersion)
		r.Get("/metrics", h.metrics.handler().ServeHTTP)
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.me)
	})

	// user administration
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)
		r.Post("/users", h.createUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	if h.testingEndpoints {
		router.Group(func(r chi.Router) {
			r.Delete("/testing/all-data", h.deleteAllData)
			r.Get("/testing/last-confirmation-code", h.lastConfirmationCode)
			r.Post("/testing/confirm-email", h.confirmRegistration)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
