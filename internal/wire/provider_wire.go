package wire

import (
	"jua-kazi/internal/adaptor"
	"jua-kazi/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireProvider(r chi.Router, providerHandler *adaptor.ProviderHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/providers", providerHandler.ListProviders)
	r.Get("/api/providers/{id}", providerHandler.GetProvider)
	r.Get("/api/providers/{id}/contact", providerHandler.Contact)

	// ==================== OWNER ROUTES ====================
	// Ownership is checked per listing in the handler
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Post("/api/providers", providerHandler.CreateProfile)
		r.Put("/api/providers/{id}", providerHandler.UpdateProfile)
		r.Post("/api/providers/{id}/images", providerHandler.UploadImage)
	})
}
