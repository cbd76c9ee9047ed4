package wire

import (
	"jua-kazi/internal/adaptor"
	"jua-kazi/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/accounts", accountHandler.CreateAccount)
	r.Post("/api/login", accountHandler.Login)

	// ==================== SESSION ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Post("/api/logout", accountHandler.Logout)
		r.Get("/api/session", accountHandler.CurrentSession)
		r.Put("/api/account", accountHandler.UpdateAccount)
		r.Get("/api/me/provider", accountHandler.MyProvider)
	})
}
