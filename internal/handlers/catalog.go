package handlers

import (
	"net/http"

	"ShopAdmin/internal/service"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler — бренды и категории.
type CatalogHandler struct {
	*responder
	CatalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService, base *responder) *CatalogHandler {
	return &CatalogHandler{responder: base, CatalogService: catalogService}
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.CatalogService.ListBrands(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, brands)
}

func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.CatalogService.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	b, err := h.CatalogService.CreateBrand(r.Context(), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	b, err := h.CatalogService.UpdateBrand(r.Context(), chi.URLParam(r, "id"), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteBrand(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CatalogService.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.CatalogService.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	c, err := h.CatalogService.CreateCategory(r.Context(), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	c, err := h.CatalogService.UpdateCategory(r.Context(), chi.URLParam(r, "id"), candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
