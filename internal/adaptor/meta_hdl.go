package adaptor

import (
	"net/http"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/dto/response"
	"jua-kazi/pkg/utils"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Categories handles GET /api/categories
func (h *MetaHandler) Categories(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Categories retrieved", response.CategoriesToResponse(entity.ServiceCategories()))
}

// Cities handles GET /api/cities
func (h *MetaHandler) Cities(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Cities retrieved", entity.KenyanCities)
}

// Health handles GET /health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "OK", nil)
}
