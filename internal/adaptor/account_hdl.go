package adaptor

import (
	"net/http"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/dto/request"
	"jua-kazi/internal/dto/response"
	"jua-kazi/internal/usecase"
	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
)

type AccountHandler struct {
	base
}

func NewAccountHandler(service *usecase.Service, log *zap.Logger) *AccountHandler {
	return &AccountHandler{base{service: service, log: log.With(zap.String("handler", "account"))}}
}

// CreateAccount handles POST /api/accounts. The new account becomes the
// caller's session.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccountRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	sess := h.session(r)
	user, err := h.service.Directory(sess).CreateAccount(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create account")
		return
	}

	utils.ResponseCreated(w, "Account created", sessionResponse(sess, user))
}

// Login handles POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	sess := h.session(r)
	user, err := h.service.Directory(sess).Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", sessionResponse(sess, user))
}

// Logout handles POST /api/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.directory(r).Logout(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// CurrentSession handles GET /api/session
func (h *AccountHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	user, err := h.service.Directory(sess).CurrentSession(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}
	if user == nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", sessionResponse(sess, user))
}

// UpdateAccount handles PUT /api/account for the signed-in user.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateAccountRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}
	if req.Empty() {
		utils.ResponseBadRequest(w, "No fields to update", nil)
		return
	}

	user, err := h.directory(r).UpdateAccount(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update account")
		return
	}

	utils.ResponseSuccess(w, "Account updated successfully", response.UserToResponse(user))
}

// MyProvider handles GET /api/me/provider
func (h *AccountHandler) MyProvider(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	provider, err := h.directory(r).GetProviderByUser(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get own provider")
		return
	}

	utils.ResponseSuccess(w, "Provider profile retrieved successfully", response.ProviderToResponse(provider))
}

func sessionResponse(sess *usecase.TokenSession, user *entity.User) response.SessionResponse {
	resp := response.SessionResponse{
		Token: sess.Token(),
		User:  response.UserToResponse(user),
	}
	if exp := sess.ExpiresAt(); !exp.IsZero() {
		resp.ExpiresAt = &exp
	}
	return resp
}
