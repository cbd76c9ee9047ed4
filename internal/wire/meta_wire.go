package wire

import (
	"jua-kazi/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMeta(r chi.Router, metaHandler *adaptor.MetaHandler) {
	r.Get("/api/categories", metaHandler.Categories)
	r.Get("/api/cities", metaHandler.Cities)
}
