package adaptor

import (
	"net/http"

	"jua-kazi/internal/dto/request"
	"jua-kazi/internal/usecase"
	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
)

type AssistantHandler struct {
	base
}

func NewAssistantHandler(service *usecase.Service, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{base{service: service, log: log.With(zap.String("handler", "assistant"))}}
}

// Suggestions handles GET /api/suggestions?q=. Requests are debounced per
// client; a superseded one answers with stale=true and no suggestions.
func (h *AssistantHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	resp := h.service.Assistant.Suggest(r.Context(), suggestionKey(r), query)

	utils.ResponseSuccess(w, "Suggestions retrieved", resp)
}

// RewriteBio handles POST /api/assistant/rewrite-bio
func (h *AssistantHandler) RewriteBio(w http.ResponseWriter, r *http.Request) {
	var req request.RewriteBioRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp := h.service.Assistant.RewriteBio(r.Context(), req.Text, req.Category)
	utils.ResponseSuccess(w, "Bio processed", resp)
}

// suggestionKey identifies the typing client: its session token, else an
// explicit X-Client-ID, else its address.
func suggestionKey(r *http.Request) string {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		return "token:" + token
	}
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return "client:" + id
	}
	return "ip:" + clientIP(r)
}
