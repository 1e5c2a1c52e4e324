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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/devices", h.getDeviceList)
		r.Put("/api/devices", h.putDeviceList)

		r.Get("/api/bundles/{deviceID}", h.getBundle)
		r.Put("/api/bundles/{deviceID}", h.putBundle)
		r.Post("/api/bundles/{deviceID}/prekey", h.takePreKey)
		r.Get("/api/bundles/{deviceID}/prekeys/count", h.preKeyCount)

		r.Get("/api/services", h.getServices)
		r.Post("/api/services", h.postServices)
	})

	return router
}
