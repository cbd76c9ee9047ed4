package adaptor

import (
	"net/http"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/dto/request"
	"jua-kazi/internal/dto/response"
	"jua-kazi/internal/usecase"
	"jua-kazi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxImageSize = 8 << 20

type ProviderHandler struct {
	base
}

func NewProviderHandler(service *usecase.Service, log *zap.Logger) *ProviderHandler {
	return &ProviderHandler{base{service: service, log: log.With(zap.String("handler", "provider"))}}
}

// ListProviders handles GET /api/providers: approved listings matching
// q, category and location, paginated.
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := request.ListingQuery{
		Search:           query.Get("q"),
		Category:         query.Get("category"),
		Location:         query.Get("location"),
		PaginatedRequest: request.NewPaginatedRequest(query.Get("page"), query.Get("per_page")),
	}

	listings, err := h.directory(r).ListProviders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list providers")
		return
	}

	visible := usecase.FilterListings(listings, usecase.ListingFilter{
		Search:   q.Search,
		Category: q.Category,
		Location: q.Location,
	})
	page := utils.Paginate(visible, q.Offset(), q.Limit())

	utils.ResponseSuccess(w, "Providers retrieved successfully",
		response.NewPaginatedResponse(response.ListingsToResponse(page), q.Page, q.Limit(), int64(len(visible))))
}

// GetProvider handles GET /api/providers/{id}. Pending listings are only
// visible to their owner and admins.
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.visibleListing(w, r, "get provider")
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "Provider retrieved successfully", response.ListingToResponse(listing))
}

// Contact handles GET /api/providers/{id}/contact
func (h *ProviderHandler) Contact(w http.ResponseWriter, r *http.Request) {
	listing, err := h.directory(r).GetProvider(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get contact")
		return
	}
	if !listing.IsApproved {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	contact, err := usecase.ContactLinks(listing)
	if err != nil {
		handleServiceError(w, h.log, err, "get contact")
		return
	}

	utils.ResponseSuccess(w, "Contact links generated", contact)
}

// CreateProfile handles POST /api/providers for the signed-in user.
func (h *ProviderHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProfileRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	provider, err := h.directory(r).CreateProviderProfile(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create profile")
		return
	}

	utils.ResponseCreated(w, "Profile submitted for approval", response.ProviderToResponse(provider))
}

// UpdateProfile handles PUT /api/providers/{id} (owner or admin)
func (h *ProviderHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	dir := h.directory(r)
	id := chi.URLParam(r, "id")

	listing, err := dir.GetProvider(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}
	if !canManage(r, listing) {
		utils.ResponseForbidden(w, "You can only edit your own listing")
		return
	}

	var req request.UpdateProfileRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}
	if req.Empty() {
		utils.ResponseBadRequest(w, "No fields to update", nil)
		return
	}

	provider, err := dir.UpdateProviderProfile(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", response.ProviderToResponse(provider))
}

// UploadImage handles POST /api/providers/{id}/images with a multipart
// "image" file (owner or admin).
func (h *ProviderHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if !h.service.Images.Enabled() {
		utils.ResponseServiceUnavailable(w, "Image uploads are not configured")
		return
	}

	dir := h.directory(r)
	id := chi.URLParam(r, "id")

	listing, err := dir.GetProvider(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image")
		return
	}
	if !canManage(r, listing) {
		utils.ResponseForbidden(w, "You can only edit your own listing")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing image file", nil)
		return
	}
	defer file.Close()

	provider, url, err := h.service.Images.AttachImage(r.Context(), dir, id, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "Image uploaded", response.ImageResponse{
		URL:      url,
		Provider: response.ProviderToResponse(provider),
	})
}

func (h *ProviderHandler) visibleListing(w http.ResponseWriter, r *http.Request, operation string) (*entity.ProviderListing, bool) {
	listing, err := h.directory(r).GetProvider(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return nil, false
	}
	if !listing.IsApproved && !canManage(r, listing) {
		utils.ResponseNotFound(w, "Resource not found")
		return nil, false
	}
	return listing, true
}
