package wire

import (
	"jua-kazi/internal/adaptor"
	"jua-kazi/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAssistant(r chi.Router, assistantHandler *adaptor.AssistantHandler) {
	r.Get("/api/suggestions", assistantHandler.Suggestions)

	r.With(middleware.RequireSession).Post("/api/assistant/rewrite-bio", assistantHandler.RewriteBio)
}
