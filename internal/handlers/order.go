package handlers

import (
	"net/http"

	"ShopAdmin/internal/service"

	"github.com/go-chi/chi/v5"
)

// OrderHandler — список заказов и смена статуса.
type OrderHandler struct {
	*responder
	OrderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService, base *responder) *OrderHandler {
	return &OrderHandler{responder: base, OrderService: orderService}
}

// List отдаёт заказы; ?status= фильтрует по статусу.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.OrderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}

// UpdateStatus принимает {"status": "..."}.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	candidate, ok := h.decodeCandidate(w, r)
	if !ok {
		return
	}
	status, _ := candidate["status"].(string)
	o, err := h.OrderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}
