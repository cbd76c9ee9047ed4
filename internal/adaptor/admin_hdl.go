package adaptor

import (
	"net/http"

	"jua-kazi/internal/dto/request"
	"jua-kazi/internal/dto/response"
	"jua-kazi/internal/usecase"
	"jua-kazi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the moderation routes. The Admin middleware gates the
// group; the directory re-checks the role on every toggle.
type AdminHandler struct {
	base
}

func NewAdminHandler(service *usecase.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{base{service: service, log: log.With(zap.String("handler", "admin"))}}
}

// ListProviders handles GET /api/admin/providers: every listing, pending
// ones included.
func (h *AdminHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	page := request.NewPaginatedRequest(r.URL.Query().Get("page"), r.URL.Query().Get("per_page"))

	listings, err := h.directory(r).ListProviders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all providers")
		return
	}

	data := utils.Paginate(listings, page.Offset(), page.Limit())
	utils.ResponseSuccess(w, "Providers retrieved successfully",
		response.NewPaginatedResponse(response.ListingsToResponse(data), page.Page, page.Limit(), int64(len(listings))))
}

// SetApproval handles PATCH /api/admin/providers/{id}/approval
func (h *AdminHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	var req request.SetApprovedRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	provider, err := h.directory(r).AdminSetApproved(r.Context(), chi.URLParam(r, "id"), *req.Approved)
	if err != nil {
		handleServiceError(w, h.log, err, "set approval")
		return
	}

	utils.ResponseSuccess(w, "Approval updated", response.ProviderToResponse(provider))
}

// SetFeatured handles PATCH /api/admin/providers/{id}/featured
func (h *AdminHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	var req request.SetFeaturedRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	provider, err := h.directory(r).AdminSetFeatured(r.Context(), chi.URLParam(r, "id"), *req.Featured)
	if err != nil {
		handleServiceError(w, h.log, err, "set featured")
		return
	}

	utils.ResponseSuccess(w, "Featured flag updated", response.ProviderToResponse(provider))
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := request.NewPaginatedRequest(r.URL.Query().Get("page"), r.URL.Query().Get("per_page"))

	users, total, err := h.directory(r).ListUsers(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully",
		response.NewPaginatedResponse(response.UsersToResponse(users), page.Page, page.Limit(), total))
}

// SetVerification handles PATCH /api/admin/users/{id}/verification
func (h *AdminHandler) SetVerification(w http.ResponseWriter, r *http.Request) {
	var req request.SetVerifiedRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	user, err := h.directory(r).AdminSetVerified(r.Context(), chi.URLParam(r, "id"), *req.Verified)
	if err != nil {
		handleServiceError(w, h.log, err, "set verification")
		return
	}

	utils.ResponseSuccess(w, "Verification updated", response.UserToResponse(user))
}
