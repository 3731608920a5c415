package handlers

import (
	"net/http"

	"ShopAdmin/internal/middleware"
	"ShopAdmin/internal/service"
)

// AuthHandler — вход и данные текущего пользователя.
type AuthHandler struct {
	*responder
	UserService *service.UserService
}

func NewAuthHandler(userService *service.UserService, base *responder) *AuthHandler {
	return &AuthHandler{responder: base, UserService: userService}
}

// Login проверяет форму входа и выставляет auth cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	user, err := h.UserService.Login(r.Context(), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := middleware.SetLoginCookieTTL(w, user.ID, h.config.AuthSecret, h.config.TokenTTL); err != nil {
		h.logger.Errorw("Login: issue token", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.logger.Infow("user logged in", "user_id", user.ID, "role", user.Role)
	h.writeJSON(w, http.StatusOK, user)
}

// Me возвращает текущего пользователя.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// ListUsers returns live users; ?role= narrows the list to one role.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}
