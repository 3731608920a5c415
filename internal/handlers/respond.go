package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ShopAdmin/internal/config"
	"ShopAdmin/internal/service"
	"ShopAdmin/internal/validation"

	"go.uber.org/zap"
)

// maxBodyBytes ограничивает тело JSON-запроса.
const maxBodyBytes = 1 << 20

// responder — общие помощники хендлеров: разбор тела, выбор локали и
// отображение ошибок сервисов в HTTP-статусы.
type responder struct {
	catalog *validation.Catalog
	logger  *zap.SugaredLogger
	config  *config.Config
}

func newResponder(catalog *validation.Catalog, logger *zap.SugaredLogger, cfg *config.Config) *responder {
	return &responder{catalog: catalog, logger: logger, config: cfg}
}

// locale picks ?lang=, then Accept-Language, then the configured default.
func (h *responder) locale(r *http.Request) string {
	return h.catalog.Match(strings.Join([]string{
		r.URL.Query().Get("lang"),
		r.Header.Get("Accept-Language"),
		h.config.DefaultLocale,
	}, ","))
}

// decodeCandidate reads a JSON object body. A null body yields an empty
// candidate.
func (h *responder) decodeCandidate(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var candidate map[string]any
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		h.logger.Warnw("invalid request body", "path", r.URL.Path, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return nil, false
	}
	if candidate == nil {
		candidate = map[string]any{}
	}
	return candidate, true
}

func (h *responder) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFieldError отвечает 422 в той же форме, что и *validation.Errors, для
// проверок, которым нужна база. Текст берётся из каталога по локали запроса.
func (h *responder) writeFieldError(w http.ResponseWriter, r *http.Request, field, key string, repl ...string) {
	msg := h.catalog.Text(key, h.locale(r), repl...)
	h.writeJSON(w, http.StatusUnprocessableEntity, map[string]map[string][]string{"errors": {field: {msg}}})
}

// writeError maps a service error onto a response.
func (h *responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if verrs := validation.AsErrors(err); verrs != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, verrs)
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "invalid login or password", http.StatusUnauthorized)
	case errors.Is(err, service.ErrParentNotFound):
		h.writeFieldError(w, r, "parentId", "category.parentId.not_found")
	case errors.Is(err, service.ErrParentCycle):
		h.writeFieldError(w, r, "parentId", "category.parentId.cycle")
	case errors.Is(err, service.ErrUnknownPermission):
		var ids string
		var unknown *service.UnknownPermissionsError
		if errors.As(err, &unknown) {
			ids = strings.Join(unknown.IDs, ", ")
		}
		h.writeFieldError(w, r, "permissions", "role.permissions.unknown", "{ids}", ids)
	case errors.Is(err, service.ErrInvalidStatus):
		h.writeFieldError(w, r, "status", "order.status.invalid")
	case errors.Is(err, service.ErrInvalidRole):
		h.writeFieldError(w, r, "role", "user.role.invalid")
	case errors.Is(err, service.ErrOrderClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Errorw("service error", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
