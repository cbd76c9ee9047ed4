package wire

import (
	"jua-kazi/internal/adaptor"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireSession) // Must be authenticated
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/providers", adminHandler.ListProviders)
		r.Patch("/providers/{id}/approval", adminHandler.SetApproval)
		r.Patch("/providers/{id}/featured", adminHandler.SetFeatured)

		r.Get("/users", adminHandler.ListUsers)
		r.Patch("/users/{id}/verification", adminHandler.SetVerification)
	})
}
