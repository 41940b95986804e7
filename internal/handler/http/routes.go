package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.generalLimiter))
		r.Get("/api/version", h.getServerVersion)
	})

	// encrypted secrets and the secure file pipeline
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.encryptionLimiter))
		r.Use(h.auth)
		r.Post("/api/secrets", h.createSecret)
		r.Get("/api/secrets/{id}", h.getSecret)
		r.Post("/api/files/upload", h.uploadFile)
		r.Get("/api/files/{bucket}/{name}", h.downloadFile)
		r.Delete("/api/files/{bucket}/{name}", h.deleteFile)
	})

	// diagnostic routes, admin only
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.debugLimiter))
		r.Use(h.auth)
		r.Get("/api/debug/limits", h.getRateLimits)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
