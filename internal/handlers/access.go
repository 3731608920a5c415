package handlers

import (
	"net/http"

	"ShopAdmin/internal/service"

	"github.com/go-chi/chi/v5"
)

// AccessHandler — права и роли.
type AccessHandler struct {
	*responder
	AccessService *service.AccessService
}

func NewAccessHandler(accessService *service.AccessService, base *responder) *AccessHandler {
	return &AccessHandler{responder: base, AccessService: accessService}
}

func (h *AccessHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.AccessService.ListPermissions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, perms)
}

func (h *AccessHandler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	p, err := h.AccessService.CreatePermission(r.Context(), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *AccessHandler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	p, err := h.AccessService.UpdatePermission(r.Context(), chi.URLParam(r, "id"), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *AccessHandler) DeletePermission(w http.ResponseWriter, r *http.Request) {
	if err := h.AccessService.DeletePermission(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccessHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.AccessService.ListRoles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, roles)
}

func (h *AccessHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.AccessService.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, role)
}

func (h *AccessHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	role, err := h.AccessService.CreateRole(r.Context(), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, role)
}

func (h *AccessHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	role, err := h.AccessService.UpdateRole(r.Context(), chi.URLParam(r, "id"), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, role)
}

func (h *AccessHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.AccessService.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
