package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/signup/validate-field", h.validateField)
	router.Post("/api/signup/validate", h.validateForm)
	router.Post("/api/signup/strength", h.passwordStrength)

	// the integrity check only guards the request that would create an account
	router.With(h.checkHash).Post("/api/signup", h.submit)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
