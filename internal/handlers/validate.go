package handlers

import (
	"net/http"

	"ShopAdmin/internal/validation"

	"github.com/go-chi/chi/v5"
)

// ValidateHandler прогоняет кандидата через правила без сохранения.
type ValidateHandler struct {
	*responder
	Engine *validation.Engine
}

func NewValidateHandler(engine *validation.Engine, base *responder) *ValidateHandler {
	return &ValidateHandler{responder: base, Engine: engine}
}

type validateResponse struct {
	Valid bool `json:"valid"`
	Value any  `json:"value"`
}

// Validate отвечает 200 с нормализованным значением или 422 с ошибками полей.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	entity, ok := validation.ParseEntity(chi.URLParam(r, "entity"))
	if !ok {
		http.Error(w, "unknown entity", http.StatusNotFound)
		return
	}
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	value, err := h.Engine.Validate(entity, candidate, h.locale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, validateResponse{Valid: true, Value: value})
}
