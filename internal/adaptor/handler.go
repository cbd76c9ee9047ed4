package adaptor

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/usecase"
	apperrors "jua-kazi/pkg/errors"
	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Account   *AccountHandler
	Provider  *ProviderHandler
	Admin     *AdminHandler
	Assistant *AssistantHandler
	Meta      *MetaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Account:   NewAccountHandler(service, log),
		Provider:  NewProviderHandler(service, log),
		Admin:     NewAdminHandler(service, log),
		Assistant: NewAssistantHandler(service, log),
		Meta:      NewMetaHandler(),
	}
}

// base carries what every handler needs to reach the directory on behalf
// of the calling client.
type base struct {
	service *usecase.Service
	log     *zap.Logger
}

// session wraps the caller's bearer token, if the Session middleware
// accepted one.
func (b base) session(r *http.Request) *usecase.TokenSession {
	token, _ := utils.GetTokenFromContext(r.Context())
	return b.service.ClientSession(token, usecase.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	})
}

func (b base) directory(r *http.Request) usecase.Directory {
	return b.service.Directory(b.session(r))
}

// canManage reports whether the caller owns the listing or is an admin.
func canManage(r *http.Request, listing *entity.ProviderListing) bool {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return false
	}
	if role, _ := utils.GetRoleFromContext(r.Context()); role == string(entity.RoleAdmin) {
		return true
	}
	return listing.OwnedBy(userID)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

func validateRequest(w http.ResponseWriter, req any) bool {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// handleServiceError maps error kinds onto status codes
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, apperrors.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Warn(operation+" failed - no session", zap.Error(err))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Admin access required")

	case errors.Is(err, usecase.ErrImagesDisabled):
		utils.ResponseServiceUnavailable(w, "Image uploads are not configured")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
